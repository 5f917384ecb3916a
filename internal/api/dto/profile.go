package dto

// CreateProfileRequest represents the profile creation request
type CreateProfileRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// ProfileResponse represents a profile
type ProfileResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProfileListResponse represents the list of profiles
type ProfileListResponse struct {
	Items []ProfileResponse `json:"items"`
}
