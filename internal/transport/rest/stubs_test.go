package rest

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/heartmarshall/decision-rooms/internal/auth"
	"github.com/heartmarshall/decision-rooms/internal/domain"
	"github.com/heartmarshall/decision-rooms/internal/service/ballot"
	authsvc "github.com/heartmarshall/decision-rooms/internal/service/auth"
	"github.com/heartmarshall/decision-rooms/internal/service/room"
)

type authServiceStub struct {
	register func(ctx context.Context, input authsvc.RegisterInput) (*domain.User, error)
	login    func(ctx context.Context, input authsvc.LoginInput) (*authsvc.LoginResult, error)
}

func (s *authServiceStub) Register(ctx context.Context, input authsvc.RegisterInput) (*domain.User, error) {
	return s.register(ctx, input)
}

func (s *authServiceStub) Login(ctx context.Context, input authsvc.LoginInput) (*authsvc.LoginResult, error) {
	return s.login(ctx, input)
}

type roomServiceStub struct {
	create func(ctx context.Context, creatorID uuid.UUID, input room.CreateRoomInput) (*domain.Room, error)
	list   func(ctx context.Context, creatorID uuid.UUID) ([]domain.RoomSummary, error)
	get    func(ctx context.Context, roomID, requesterID uuid.UUID) (*domain.RoomView, error)
}

func (s *roomServiceStub) CreateRoom(ctx context.Context, creatorID uuid.UUID, input room.CreateRoomInput) (*domain.Room, error) {
	return s.create(ctx, creatorID, input)
}

func (s *roomServiceStub) ListRooms(ctx context.Context, creatorID uuid.UUID) ([]domain.RoomSummary, error) {
	return s.list(ctx, creatorID)
}

func (s *roomServiceStub) GetRoom(ctx context.Context, roomID, requesterID uuid.UUID) (*domain.RoomView, error) {
	return s.get(ctx, roomID, requesterID)
}

type ballotServiceStub struct {
	cast func(ctx context.Context, voterID uuid.UUID, input ballot.CastVoteInput) (*domain.Results, error)
}

func (s *ballotServiceStub) CastVote(ctx context.Context, voterID uuid.UUID, input ballot.CastVoteInput) (*domain.Results, error) {
	return s.cast(ctx, voterID, input)
}

type tallyServiceStub struct {
	get func(ctx context.Context, roomID, requesterID uuid.UUID) (*domain.TallyView, error)
}

func (s *tallyServiceStub) GetTally(ctx context.Context, roomID, requesterID uuid.UUID) (*domain.TallyView, error) {
	return s.get(ctx, roomID, requesterID)
}

// tokenStub accepts tokens of the form registered in ids.
type tokenStub struct {
	ids map[string]auth.Identity
}

func (s *tokenStub) ValidateToken(_ context.Context, token string) (auth.Identity, error) {
	id, ok := s.ids[token]
	if !ok {
		return auth.Identity{}, errors.New("invalid token")
	}
	return id, nil
}
