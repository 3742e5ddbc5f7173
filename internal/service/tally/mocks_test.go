package tally

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/decision-rooms/internal/domain"
)

var (
	_ roomRepo  = &roomRepoMock{}
	_ voteRepo  = &voteRepoMock{}
	_ txManager = &txManagerMock{}
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
	CountByOptionFunc      func(ctx context.Context, roomID uuid.UUID) (domain.Tally, error)
	ListJustificationsFunc func(ctx context.Context, roomID uuid.UUID) ([]domain.Justification, error)

	calls struct {
		CountByOption []struct {
			Ctx    context.Context
			RoomID uuid.UUID
		}
		ListJustifications []struct {
			Ctx    context.Context
			RoomID uuid.UUID
		}
	}
	lockCountByOption      sync.RWMutex
	lockListJustifications sync.RWMutex
}

func (mock *voteRepoMock) CountByOption(ctx context.Context, roomID uuid.UUID) (domain.Tally, error) {
	if mock.CountByOptionFunc == nil {
		panic("voteRepoMock.CountByOptionFunc: method is nil but voteRepo.CountByOption was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		RoomID uuid.UUID
	}{Ctx: ctx, RoomID: roomID}
	mock.lockCountByOption.Lock()
	mock.calls.CountByOption = append(mock.calls.CountByOption, callInfo)
	mock.lockCountByOption.Unlock()
	return mock.CountByOptionFunc(ctx, roomID)
}

func (mock *voteRepoMock) CountByOptionCalls() []struct {
	Ctx    context.Context
	RoomID uuid.UUID
} {
	mock.lockCountByOption.RLock()
	calls := mock.calls.CountByOption
	mock.lockCountByOption.RUnlock()
	return calls
}

func (mock *voteRepoMock) ListJustifications(ctx context.Context, roomID uuid.UUID) ([]domain.Justification, error) {
	if mock.ListJustificationsFunc == nil {
		panic("voteRepoMock.ListJustificationsFunc: method is nil but voteRepo.ListJustifications was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		RoomID uuid.UUID
	}{Ctx: ctx, RoomID: roomID}
	mock.lockListJustifications.Lock()
	mock.calls.ListJustifications = append(mock.calls.ListJustifications, callInfo)
	mock.lockListJustifications.Unlock()
	return mock.ListJustificationsFunc(ctx, roomID)
}

func (mock *voteRepoMock) ListJustificationsCalls() []struct {
	Ctx    context.Context
	RoomID uuid.UUID
} {
	mock.lockListJustifications.RLock()
	calls := mock.calls.ListJustifications
	mock.lockListJustifications.RUnlock()
	return calls
}

type txManagerMock struct {
	RunInReadOnlyTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInReadOnlyTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInReadOnlyTx sync.RWMutex
}

func (mock *txManagerMock) RunInReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInReadOnlyTxFunc == nil {
		panic("txManagerMock.RunInReadOnlyTxFunc: method is nil but txManager.RunInReadOnlyTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInReadOnlyTx.Lock()
	mock.calls.RunInReadOnlyTx = append(mock.calls.RunInReadOnlyTx, callInfo)
	mock.lockRunInReadOnlyTx.Unlock()
	return mock.RunInReadOnlyTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInReadOnlyTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInReadOnlyTx.RLock()
	calls := mock.calls.RunInReadOnlyTx
	mock.lockRunInReadOnlyTx.RUnlock()
	return calls
}
