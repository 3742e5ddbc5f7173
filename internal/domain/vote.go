package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is a single participant's choice in a room. At most one vote exists
// per (RoomID, VoterID) pair and it is never modified once cast.
type Vote struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	OptionID  uuid.UUID
	VoterID   uuid.UUID
	Comment   *string
	CreatedAt time.Time
}

// HasComment reports whether the vote carries a non-empty justification.
func (v *Vote) HasComment() bool {
	return v.Comment != nil && *v.Comment != ""
}

// Tally maps option IDs to vote counts. Options without votes are absent.
type Tally map[uuid.UUID]int

// Total returns the number of votes counted.
func (t Tally) Total() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

// Justification is a disclosed vote comment.
type Justification struct {
	VoteID       uuid.UUID
	VoterDisplay string
	OptionText   string
	Comment      string
}

// Results is the tally of a room together with its justification feed.
type Results struct {
	Tally          Tally
	Justifications []Justification
}

// TallyView is the disclosed result of a room for a permitted requester.
type TallyView struct {
	Results
	VotingClosed bool
}
