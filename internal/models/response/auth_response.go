package response

import "kos-be-svc/internal/models"

// AuthResponse is the payload returned by register and login
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}
