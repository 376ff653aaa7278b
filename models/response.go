package models

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type UserResponse struct {
	User User `json:"user"`
}

type UploadResponse struct {
	FileURL string `json:"file_url"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
