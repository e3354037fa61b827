package dto

// RegisterRequest represents an account registration request.
type RegisterRequest struct {
	Type            string `json:"type" binding:"required" example:"alumni"`
	Name            string `json:"name" binding:"required" example:"Maria Silva"`
	Email           string `json:"email" binding:"required,email" example:"maria@mail.com"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Location        string `json:"location" binding:"required" example:"Porto"`
	CourseEndDate   int    `json:"courseEndDate" binding:"required" example:"2020"`
	ActivityField   string `json:"activityField" binding:"required" example:"Web Development"`
}

// LoginRequest represents login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Success     bool   `json:"success" example:"true"`
	Message     string `json:"message" example:"login successfully"`
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn" example:"86400"`
}
