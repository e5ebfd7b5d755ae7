package models

import "time"

// Driving experience categories accepted on intake.
const (
	ExperienceNone         = "none"
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceExperienced  = "experienced"
)

// Student represents a learner who submitted a course registration.
type Student struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	DateOfBirth       string    `json:"dateOfBirth"`
	DrivingExperience *string   `json:"drivingExperience"`
	Comments          *string   `json:"comments"`
	CreatedAt         time.Time `json:"createdAt"`
}

// StudentDetail joins a student with every registration it owns, each enriched
// with its course and payment. Registrations whose course no longer resolves
// are dropped from the list.
type StudentDetail struct {
	Student
	Registrations []RegistrationSummary `json:"registrations"`
}
