package models

// Course type categories.
const (
	CourseTypeLightVehicles = "light-vehicles"
	CourseTypeHeavyVehicles = "heavy-vehicles"
	CourseTypeMotorcycle    = "motorcycle"
	CourseTypeSimulator     = "simulator"
)

// Course represents an offered training program. Price is a decimal string
// with two fraction digits; IsActive is 1/0 as the front-end expects.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Duration    string   `json:"duration"`
	Capacity    int      `json:"capacity"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	IsActive    int      `json:"isActive"`
}
