package dto

// AuthCheckRequest represents an administrator credential check
type AuthCheckRequest struct {
	LastName  string `json:"last_name" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// AuthCheckResponse reports the outcome of the check
type AuthCheckResponse struct {
	Authenticated bool `json:"authenticated"`
}
