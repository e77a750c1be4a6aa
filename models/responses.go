package models

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is the body of every non-2xx JSON response and of the
// registration success response. Messages are short and never carry
// internal details.
type MessageResponse struct {
	Message string `json:"message"`
}
