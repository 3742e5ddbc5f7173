package room

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/decision-rooms/internal/domain"
)

// GetRoom returns the room as seen by requesterID. Which option the requester
// chose is never part of the view.
func (s *Service) GetRoom(ctx context.Context, roomID, requesterID uuid.UUID) (*domain.RoomView, error) {
	if requesterID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("room.GetRoom: %w", err)
	}

	hasVoted, err := s.votes.Exists(ctx, roomID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("room.GetRoom check vote: %w", err)
	}

	return &domain.RoomView{
		Room:         *room,
		IsCreator:    room.IsCreator(requesterID),
		VotingClosed: room.VotingClosed(s.clock.Now()),
		HasVoted:     hasVoted,
	}, nil
}
