package tally

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/decision-rooms/internal/domain"
)

// GetTally discloses the results of a room. Before the deadline only the
// creator may see them. The decision is made on every call.
func (s *Service) GetTally(ctx context.Context, roomID, requesterID uuid.UUID) (*domain.TallyView, error) {
	if requesterID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("tally.GetTally: %w", err)
	}

	closed := room.VotingClosed(s.clock.Now())
	if !closed && !room.IsCreator(requesterID) {
		s.log.DebugContext(ctx, "live tally denied",
			slog.String("room_id", roomID.String()),
			slog.String("user_id", requesterID.String()))
		return nil, domain.ErrForbidden
	}

	res, err := s.Results(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("tally.GetTally: %w", err)
	}

	return &domain.TallyView{Results: *res, VotingClosed: closed}, nil
}
