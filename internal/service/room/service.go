package room

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/decision-rooms/internal/domain"
)

type roomRepo interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.RoomSummary, error)
}

type voteRepo interface {
	Exists(ctx context.Context, roomID, voterID uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the lifecycle of decision rooms.
type Service struct {
	rooms roomRepo
	votes voteRepo
	tx    txManager
	clock domain.Clock
	log   *slog.Logger
}

// NewService creates a new room service.
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
		log:   log.With("service", "room"),
	}
}
