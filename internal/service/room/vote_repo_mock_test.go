package room

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	ExistsFunc func(ctx context.Context, roomID, voterID uuid.UUID) (bool, error)

	calls struct {
		Exists []struct {
			Ctx     context.Context
			RoomID  uuid.UUID
			VoterID uuid.UUID
		}
	}
	lockExists sync.RWMutex
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
