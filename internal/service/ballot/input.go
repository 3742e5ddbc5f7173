package ballot

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/decision-rooms/internal/domain"
)

const maxCommentLen = 1000

// CastVoteInput holds the parameters for casting a vote.
type CastVoteInput struct {
	RoomID   uuid.UUID
	OptionID uuid.UUID
	Comment  *string
}

// Validate checks the shape of the input. Room and option membership are
// checked against storage by CastVote.
func (i CastVoteInput) Validate() error {
	if i.Comment != nil && utf8.RuneCountInString(*i.Comment) > maxCommentLen {
		return domain.NewValidationError("comment", fmt.Sprintf("max %d characters", maxCommentLen))
	}
	return nil
}
