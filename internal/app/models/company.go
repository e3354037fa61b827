package models

// Company defines the company model based on the 'companies' table.
type Company struct {
	ID       int64  `json:"id" db:"id" example:"1"`
	Name     string `json:"name" db:"name" example:"Alticelabs"` // Unique company name
	Location string `json:"location" db:"location" example:"Aveiro"`
	Verified bool   `json:"verified" db:"verified" example:"false"` // Set true by an admin through the verify workflow

	// Associates lists the users currently linked to this company.
	Associates []Associate `json:"associates"`
}

// Associate is a company-side link to a user, based on the
// 'company_associates' table. It is written in tandem with the user-side
// employment entry but lives independently: change-company removes the
// associate row while keeping the closed employment entry.
type Associate struct {
	ID        int64 `json:"-" db:"id"`
	CompanyID int64 `json:"-" db:"company_id"`
	UserID    int64 `json:"userId" db:"user_id"`
}
