package room

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/decision-rooms/internal/domain"
)

const (
	maxTitleLen       = 200
	maxExplanationLen = 2000
	maxOptionLen      = 200
)

// CreateRoomInput holds the parameters for creating a decision room.
type CreateRoomInput struct {
	Title       string
	Explanation string
	Options     []string
	Deadline    time.Time
}

// normalize trims text fields and drops blank options, preserving order.
func (i CreateRoomInput) normalize() CreateRoomInput {
	return CreateRoomInput{
		Title:       strings.TrimSpace(i.Title),
		Explanation: strings.TrimSpace(i.Explanation),
		Options:     domain.CompactOptions(i.Options),
		Deadline:    i.Deadline,
	}
}

// Validate checks all fields of a normalized input and collects all errors.
func (i CreateRoomInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", maxTitleLen)})
	}

	if i.Explanation == "" {
		errs = append(errs, domain.FieldError{Field: "explanation", Message: "required"})
	} else if utf8.RuneCountInString(i.Explanation) > maxExplanationLen {
		errs = append(errs, domain.FieldError{Field: "explanation", Message: fmt.Sprintf("max %d characters", maxExplanationLen)})
	}

	if n := len(i.Options); n < domain.MinRoomOptions || n > domain.MaxRoomOptions {
		errs = append(errs, domain.FieldError{
			Field:   "options",
			Message: fmt.Sprintf("between %d and %d non-empty options required", domain.MinRoomOptions, domain.MaxRoomOptions),
		})
	}
	for idx, o := range i.Options {
		if utf8.RuneCountInString(o) > maxOptionLen {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("options[%d]", idx),
				Message: fmt.Sprintf("max %d characters", maxOptionLen),
			})
		}
	}

	if i.Deadline.IsZero() {
		errs = append(errs, domain.FieldError{Field: "deadline", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
