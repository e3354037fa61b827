package models

import (
	"time"
)

// User defines the user model based on the 'users' table.
type User struct {
	ID            int64     `json:"id" db:"id" example:"1"`
	Type          UserType  `json:"type" db:"user_type" example:"alumni"`       // Account role (alumni or admin)
	Name          string    `json:"name" db:"name" example:"Maria Silva"`       // Display name
	Email         string    `json:"email" db:"email" example:"maria@mail.com"`  // Unique email address
	Password      string    `json:"-" db:"password"`                            // Bcrypt hash, never serialized
	Location      string    `json:"location" db:"location" example:"Porto"`     // Home location
	CourseEndDate int       `json:"courseEndDate" db:"course_end_date" example:"2020"` // Graduation year
	ActivityField string    `json:"activityField" db:"activity_field" example:"Web Development"`
	Points        int       `json:"points" db:"points" example:"30"` // Gamification counter
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	// Companys holds the employment history (legacy field name kept in the
	// API surface). At most one entry has a nil EndDate.
	Companys []Employment `json:"companys,omitempty"`
}

// Employment is one entry of a user's employment history, based on the
// 'employments' table. CompanyName and CompanyLocation are denormalized
// snapshots refreshed when an admin updates the company.
type Employment struct {
	ID              int64      `json:"id" db:"id"`
	UserID          int64      `json:"-" db:"user_id"`
	CompanyID       int64      `json:"companyId" db:"company_id"`
	CompanyName     string     `json:"name" db:"company_name"`
	CompanyLocation string     `json:"location,omitempty" db:"company_location"`
	Position        string     `json:"position,omitempty" db:"position"`
	StartDate       time.Time  `json:"startDate" db:"start_date"`
	EndDate         *time.Time `json:"endDate" db:"end_date"` // nil while the employment is current
}

// Current reports whether this entry is the open-ended (current) employment.
func (e Employment) Current() bool {
	return e.EndDate == nil
}
