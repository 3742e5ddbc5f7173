package room

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/decision-rooms/internal/domain"
)

var _ roomRepo = &roomRepoMock{}

type roomRepoMock struct {
	CreateFunc        func(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	ListByCreatorFunc func(ctx context.Context, creatorID uuid.UUID) ([]domain.RoomSummary, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Room *domain.Room
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByCreator []struct {
			Ctx       context.Context
			CreatorID uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockListByCreator sync.RWMutex
}

func (mock *roomRepoMock) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	if mock.CreateFunc == nil {
		panic("roomRepoMock.CreateFunc: method is nil but roomRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Room *domain.Room
	}{Ctx: ctx, Room: room}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, room)
}

func (mock *roomRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Room *domain.Room
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *roomRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	if mock.GetByIDFunc == nil {
		panic("roomRepoMock.GetByIDFunc: method is nil but roomRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *roomRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *roomRepoMock) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.RoomSummary, error) {
	if mock.ListByCreatorFunc == nil {
		panic("roomRepoMock.ListByCreatorFunc: method is nil but roomRepo.ListByCreator was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CreatorID uuid.UUID
	}{Ctx: ctx, CreatorID: creatorID}
	mock.lockListByCreator.Lock()
	mock.calls.ListByCreator = append(mock.calls.ListByCreator, callInfo)
	mock.lockListByCreator.Unlock()
	return mock.ListByCreatorFunc(ctx, creatorID)
}

func (mock *roomRepoMock) ListByCreatorCalls() []struct {
	Ctx       context.Context
	CreatorID uuid.UUID
} {
	mock.lockListByCreator.RLock()
	calls := mock.calls.ListByCreator
	mock.lockListByCreator.RUnlock()
	return calls
}
