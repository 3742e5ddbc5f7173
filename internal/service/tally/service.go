// Package tally computes room results and decides who may see them.
package tally

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
	CountByOption(ctx context.Context, roomID uuid.UUID) (domain.Tally, error)
	ListJustifications(ctx context.Context, roomID uuid.UUID) ([]domain.Justification, error)
}

type txManager interface {
	RunInReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides tally computation and disclosure.
type Service struct {
	rooms roomRepo
	votes voteRepo
	tx    txManager
	clock domain.Clock
	log   *slog.Logger
}

// NewService creates a new tally service.
func NewService(
	log *slog.Logger,
	rooms roomRepo,
	votes voteRepo,
	tx txManager,
	clock domain.Clock,
) *Service {
	return &Service{
		rooms: rooms,
		votes: votes,
		tx:    tx,
		clock: clock,
		log:   log.With("service", "tally"),
	}
}
