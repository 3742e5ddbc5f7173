package auth

import (
	"context"

	"github.com/heartmarshall/decision-rooms/internal/auth"
	"github.com/heartmarshall/decision-rooms/internal/domain"
)

// ValidateToken validates an access token and returns the identity it carries.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (auth.Identity, error) {
	identity, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return auth.Identity{}, domain.ErrUnauthorized
	}
	return identity, nil
}
