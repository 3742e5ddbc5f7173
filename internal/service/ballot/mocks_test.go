package ballot

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/decision-rooms/internal/domain"
)

var (
	_ roomRepo      = &roomRepoMock{}
	_ voteRepo      = &voteRepoMock{}
	_ resultsReader = &resultsReaderMock{}
)

type roomRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Room, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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

type voteRepoMock struct {
	CreateFunc func(ctx context.Context, vote *domain.Vote) (*domain.Vote, error)
	ExistsFunc func(ctx context.Context, roomID, voterID uuid.UUID) (bool, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Vote *domain.Vote
		}
		Exists []struct {
			Ctx     context.Context
			RoomID  uuid.UUID
			VoterID uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockExists sync.RWMutex
}

func (mock *voteRepoMock) Create(ctx context.Context, vote *domain.Vote) (*domain.Vote, error) {
	if mock.CreateFunc == nil {
		panic("voteRepoMock.CreateFunc: method is nil but voteRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Vote *domain.Vote
	}{Ctx: ctx, Vote: vote}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, vote)
}

func (mock *voteRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Vote *domain.Vote
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *voteRepoMock) Exists(ctx context.Context, roomID, voterID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("voteRepoMock.ExistsFunc: method is nil but voteRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		RoomID  uuid.UUID
		VoterID uuid.UUID
	}{Ctx: ctx, RoomID: roomID, VoterID: voterID}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, roomID, voterID)
}

func (mock *voteRepoMock) ExistsCalls() []struct {
	Ctx     context.Context
	RoomID  uuid.UUID
	VoterID uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

type resultsReaderMock struct {
	ResultsFunc func(ctx context.Context, roomID uuid.UUID) (*domain.Results, error)

	calls struct {
		Results []struct {
			Ctx    context.Context
			RoomID uuid.UUID
		}
	}
	lockResults sync.RWMutex
}

func (mock *resultsReaderMock) Results(ctx context.Context, roomID uuid.UUID) (*domain.Results, error) {
	if mock.ResultsFunc == nil {
		panic("resultsReaderMock.ResultsFunc: method is nil but resultsReader.Results was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		RoomID uuid.UUID
	}{Ctx: ctx, RoomID: roomID}
	mock.lockResults.Lock()
	mock.calls.Results = append(mock.calls.Results, callInfo)
	mock.lockResults.Unlock()
	return mock.ResultsFunc(ctx, roomID)
}

func (mock *resultsReaderMock) ResultsCalls() []struct {
	Ctx    context.Context
	RoomID uuid.UUID
} {
	mock.lockResults.RLock()
	calls := mock.calls.Results
	mock.lockResults.RUnlock()
	return calls
}
