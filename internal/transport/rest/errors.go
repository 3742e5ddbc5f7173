package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/decision-rooms/internal/domain"
)

const msgInvalidBody = "Invalid request body."

// errorMapping is checked in order; the first sentinel matched by errors.Is wins.
// ErrDuplicateVote wraps ErrConflict, so it must precede it.
var errorMapping = []struct {
	target  error
	status  int
	message string
}{
	{domain.ErrUnauthorized, http.StatusUnauthorized, "User not authenticated."},
	{domain.ErrForbidden, http.StatusForbidden, "You do not have access to this resource."},
	{domain.ErrNotFound, http.StatusNotFound, "Decision room not found."},
	{domain.ErrVotingClosed, http.StatusBadRequest, "Voting for this room has closed."},
	{domain.ErrInvalidOption, http.StatusBadRequest, "Invalid option selected for this room."},
	{domain.ErrDuplicateVote, http.StatusConflict, "You have already voted in this decision room."},
	{domain.ErrAlreadyExists, http.StatusConflict, "Username already taken."},
	{domain.ErrConflict, http.StatusConflict, "The request conflicts with the current state."},
}

// handleError writes the response for a service error. Validation errors
// carry their field list; unknown errors are logged and reported with
// fallback, never echoed.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, fallback string) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp := errorResponse{Message: "Invalid input.", Fields: make([]fieldErrorResponse, 0, len(verr.Errors))}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}
	if errors.Is(err, domain.ErrValidation) {
		writeError(w, http.StatusBadRequest, "Invalid input.")
		return
	}

	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			writeError(w, m.status, m.message)
			return
		}
	}

	log.ErrorContext(r.Context(), "internal error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
	writeError(w, http.StatusInternalServerError, fallback)
}
