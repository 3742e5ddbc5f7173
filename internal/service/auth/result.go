package auth

import "github.com/heartmarshall/decision-rooms/internal/domain"

// LoginResult is returned by Login.
type LoginResult struct {
	AccessToken string
	User        *domain.User
}
