package store

import (
	"github.com/elitedriving/institute-api/internal/models"
)

// seedCourses loads the fixed course catalogue. The four programs and their
// capacities are what the public site sells; everything else is created
// through the API.
func (s *MemoryStore) seedCourses() {
	catalogue := []models.Course{
		{
			ID:          newID(),
			Title:       "Light Vehicles",
			Description: "Learn to drive cars, SUVs, and light commercial vehicles with confidence",
			Type:        models.CourseTypeLightVehicles,
			Duration:    "4-6 weeks",
			Capacity:    4,
			Price:       "1200.00",
			Features: []string{
				"Basic vehicle operation and controls",
				"Traffic rules & road regulations",
				"Practical road training sessions",
				"Parking & maneuvering techniques",
				"Highway and city driving",
			},
			IsActive: 1,
		},
		{
			ID:          newID(),
			Title:       "Heavy Vehicles",
			Description: "Professional training for trucks and commercial vehicles with CDL preparation",
			Type:        models.CourseTypeHeavyVehicles,
			Duration:    "8-10 weeks",
			Capacity:    3,
			Price:       "2500.00",
			Features: []string{
				"Commercial vehicle operation",
				"Load management & securing",
				"Highway and long-distance driving",
				"Safety protocols & inspections",
				"CDL test preparation",
			},
			IsActive: 1,
		},
		{
			ID:          newID(),
			Title:       "Motorcycle",
			Description: "Comprehensive motorcycle riding training program for all skill levels",
			Type:        models.CourseTypeMotorcycle,
			Duration:    "3-4 weeks",
			Capacity:    6,
			Price:       "800.00",
			Features: []string{
				"Balance & control fundamentals",
				"City & highway riding",
				"Safety gear & protective equipment",
				"Weather condition training",
				"Emergency maneuvers",
			},
			IsActive: 1,
		},
		{
			ID:          newID(),
			Title:       "Simulator",
			Description: "Virtual reality driving training in a completely safe environment",
			Type:        models.CourseTypeSimulator,
			Duration:    "2-3 weeks",
			Capacity:    8,
			Price:       "600.00",
			Features: []string{
				"Risk-free learning environment",
				"Various driving scenarios",
				"Instant feedback & correction",
				"Weather & hazard simulation",
				"Perfect for nervous beginners",
			},
			IsActive: 1,
		},
	}

	for _, course := range catalogue {
		s.courses[course.ID] = course
		s.courseOrder = append(s.courseOrder, course.ID)
	}
}
