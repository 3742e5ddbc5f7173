package room

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/decision-rooms/internal/domain"
)

// ListRooms returns the rooms created by creatorID, newest first.
func (s *Service) ListRooms(ctx context.Context, creatorID uuid.UUID) ([]domain.RoomSummary, error) {
	if creatorID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	rooms, err := s.rooms.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("room.ListRooms: %w", err)
	}
	return rooms, nil
}
