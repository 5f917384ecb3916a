package dto

// CreateDeveloperRequest represents the developer creation request.
// Password may be omitted; the last name is then used as initial password.
type CreateDeveloperRequest struct {
	LastName  string `json:"last_name" binding:"required,max=50"`
	FirstName string `json:"first_name" binding:"required,max=50"`
	Phone     string `json:"phone" binding:"max=15"`
	Email     string `json:"email" binding:"required,email,max=100"`
	Password  string `json:"password"`
	ProfileID int    `json:"profile_id" binding:"required,gt=0"`
}

// UpdateDeveloperRequest represents the developer update request
type UpdateDeveloperRequest struct {
	LastName  string `json:"last_name" binding:"required,max=50"`
	FirstName string `json:"first_name" binding:"required,max=50"`
	Phone     string `json:"phone" binding:"max=15"`
	Email     string `json:"email" binding:"required,email,max=100"`
	ProfileID int    `json:"profile_id" binding:"required,gt=0"`
}

// UpdatePasswordRequest represents the password change request
type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// DeveloperResponse represents a developer. Passwords are never returned.
type DeveloperResponse struct {
	ID        int             `json:"id"`
	LastName  string          `json:"last_name"`
	FirstName string          `json:"first_name"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	Profile   ProfileResponse `json:"profile"`
}

// DeveloperListResponse represents a page of developers
type DeveloperListResponse struct {
	Items      []DeveloperResponse `json:"items"`
	Pagination PaginationInfo      `json:"pagination"`
}
