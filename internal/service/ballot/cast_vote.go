package ballot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/decision-rooms/internal/domain"
)

// CastVote records voterID's choice and returns the updated results.
//
// Checks run in a fixed order: room exists, voting open, option belongs to
// the room, no earlier vote. The earlier-vote check is advisory; the unique
// (room, voter) constraint decides concurrent attempts, and the loser gets
// ErrDuplicateVote as well.
func (s *Service) CastVote(ctx context.Context, voterID uuid.UUID, input CastVoteInput) (*domain.Results, error) {
	if voterID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	input.Comment = domain.NormalizeComment(input.Comment)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	room, err := s.rooms.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("ballot.CastVote: %w", err)
	}

	now := s.clock.Now()
	if room.VotingClosed(now) {
		return nil, domain.ErrVotingClosed
	}

	if !room.HasOption(input.OptionID) {
		return nil, domain.ErrInvalidOption
	}

	voted, err := s.votes.Exists(ctx, room.ID, voterID)
	if err != nil {
		return nil, fmt.Errorf("ballot.CastVote check vote: %w", err)
	}
	if voted {
		return nil, domain.ErrDuplicateVote
	}

	vote, err := s.votes.Create(ctx, &domain.Vote{
		ID:        uuid.New(),
		RoomID:    room.ID,
		OptionID:  input.OptionID,
		VoterID:   voterID,
		Comment:   input.Comment,
		CreatedAt: now.UTC(),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateVote):
			return nil, domain.ErrDuplicateVote
		case errors.Is(err, domain.ErrInvalidOption):
			return nil, domain.ErrInvalidOption
		}
		return nil, fmt.Errorf("ballot.CastVote: %w", err)
	}

	s.log.InfoContext(ctx, "vote cast",
		slog.String("room_id", room.ID.String()),
		slog.String("user_id", voterID.String()),
		slog.String("vote_id", vote.ID.String()),
		slog.Bool("has_comment", vote.HasComment()),
	)

	res, err := s.results.Results(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("ballot.CastVote results: %w", err)
	}
	return res, nil
}
