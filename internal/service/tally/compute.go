package tally

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/decision-rooms/internal/domain"
)

// ComputeTally returns the vote count per option. Options without votes are absent.
func (s *Service) ComputeTally(ctx context.Context, roomID uuid.UUID) (domain.Tally, error) {
	tally, err := s.votes.CountByOption(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("tally.ComputeTally: %w", err)
	}
	if tally == nil {
		tally = domain.Tally{}
	}
	return tally, nil
}

// ComputeJustifications returns the commented votes in the order they were cast.
func (s *Service) ComputeJustifications(ctx context.Context, roomID uuid.UUID) ([]domain.Justification, error) {
	list, err := s.votes.ListJustifications(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("tally.ComputeJustifications: %w", err)
	}
	if list == nil {
		list = []domain.Justification{}
	}
	return list, nil
}

// Results reads the tally and the justification feed from one snapshot, so
// every justification belongs to a counted vote.
func (s *Service) Results(ctx context.Context, roomID uuid.UUID) (*domain.Results, error) {
	var res domain.Results

	err := s.tx.RunInReadOnlyTx(ctx, func(txCtx context.Context) error {
		var err error
		if res.Tally, err = s.ComputeTally(txCtx, roomID); err != nil {
			return err
		}
		if res.Justifications, err = s.ComputeJustifications(txCtx, roomID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("tally.Results: %w", err)
	}

	return &res, nil
}
