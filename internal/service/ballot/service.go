// Package ballot accepts votes and enforces one vote per participant per room.
package ballot

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/decision-rooms/internal/domain"
)

type roomRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
}

type voteRepo interface {
	Exists(ctx context.Context, roomID, voterID uuid.UUID) (bool, error)
	Create(ctx context.Context, vote *domain.Vote) (*domain.Vote, error)
}

// resultsReader recomputes room results after a vote is recorded.
type resultsReader interface {
	Results(ctx context.Context, roomID uuid.UUID) (*domain.Results, error)
}

// Service is the vote ledger.
type Service struct {
	rooms   roomRepo
	votes   voteRepo
	results resultsReader
	clock   domain.Clock
	log     *slog.Logger
}

// NewService creates a new ballot service.
func NewService(
	log *slog.Logger,
	rooms roomRepo,
	votes voteRepo,
	results resultsReader,
	clock domain.Clock,
) *Service {
	return &Service{
		rooms:   rooms,
		votes:   votes,
		results: results,
		clock:   clock,
		log:     log.With("service", "ballot"),
	}
}
