package room

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/decision-rooms/internal/domain"
)

// CreateRoom validates the input and persists the room with its options in one
// transaction. Options keep the submitted order. A deadline in the past is
// accepted; such a room is simply closed from the start.
func (s *Service) CreateRoom(ctx context.Context, creatorID uuid.UUID, input CreateRoomInput) (*domain.Room, error) {
	if creatorID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	roomID := uuid.New()
	room := &domain.Room{
		ID:          roomID,
		Title:       input.Title,
		Explanation: input.Explanation,
		Deadline:    input.Deadline.UTC(),
		CreatorID:   creatorID,
		CreatedAt:   s.clock.Now().UTC(),
		Options:     make([]domain.Option, len(input.Options)),
	}
	for i, text := range input.Options {
		room.Options[i] = domain.Option{ID: uuid.New(), RoomID: roomID, Text: text, Position: i}
	}

	var created *domain.Room
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.rooms.Create(txCtx, room)
		if createErr != nil {
			return fmt.Errorf("create room: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("room.CreateRoom: %w", err)
	}

	s.log.InfoContext(ctx, "room created",
		slog.String("user_id", creatorID.String()),
		slog.String("room_id", created.ID.String()),
		slog.Int("options", len(created.Options)),
		slog.Time("deadline", created.Deadline),
	)

	return created, nil
}
