package domain

import (
	"time"

	"github.com/google/uuid"
)

// Option count bounds for a decision room.
const (
	MinRoomOptions = 2
	MaxRoomOptions = 5
)

// Room is a decision room: a question, its options and a voting deadline.
// Options are created together with the room and never change afterwards.
type Room struct {
	ID          uuid.UUID
	Title       string
	Explanation string
	Deadline    time.Time
	CreatorID   uuid.UUID
	Options     []Option
	CreatedAt   time.Time
}

// Option is one of the mutually exclusive choices of a room.
type Option struct {
	ID       uuid.UUID
	RoomID   uuid.UUID
	Text     string
	Position int
}

// VotingClosed reports whether the room no longer accepts votes at now.
func (r *Room) VotingClosed(now time.Time) bool {
	return IsClosed(r.Deadline, now)
}

// IsCreator reports whether userID created the room.
func (r *Room) IsCreator(userID uuid.UUID) bool {
	return userID != uuid.Nil && r.CreatorID == userID
}

// HasOption reports whether optionID is one of the room's options.
func (r *Room) HasOption(optionID uuid.UUID) bool {
	for _, o := range r.Options {
		if o.ID == optionID {
			return true
		}
	}
	return false
}

// RoomSummary is a room listed for its creator, with the number of votes cast so far.
type RoomSummary struct {
	Room
	VoteCount int
}

// RoomView is a room as seen by a specific requester. The derived fields are
// evaluated at read time and never persisted.
type RoomView struct {
	Room
	IsCreator    bool
	VotingClosed bool
	HasVoted     bool
}
