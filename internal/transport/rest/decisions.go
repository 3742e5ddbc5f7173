package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/decision-rooms/internal/domain"
	"github.com/heartmarshall/decision-rooms/internal/service/ballot"
	"github.com/heartmarshall/decision-rooms/internal/service/room"
	"github.com/heartmarshall/decision-rooms/pkg/ctxutil"
)

type roomService interface {
	CreateRoom(ctx context.Context, creatorID uuid.UUID, input room.CreateRoomInput) (*domain.Room, error)
	ListRooms(ctx context.Context, creatorID uuid.UUID) ([]domain.RoomSummary, error)
	GetRoom(ctx context.Context, roomID, requesterID uuid.UUID) (*domain.RoomView, error)
}

type ballotService interface {
	CastVote(ctx context.Context, voterID uuid.UUID, input ballot.CastVoteInput) (*domain.Results, error)
}

type tallyService interface {
	GetTally(ctx context.Context, roomID, requesterID uuid.UUID) (*domain.TallyView, error)
}

// DecisionHandler serves the decision room endpoints. Every route requires
// an authenticated user.
type DecisionHandler struct {
	rooms   roomService
	ballots ballotService
	tallies tallyService
	log     *slog.Logger
}

// NewDecisionHandler creates a DecisionHandler.
func NewDecisionHandler(rooms roomService, ballots ballotService, tallies tallyService, logger *slog.Logger) *DecisionHandler {
	return &DecisionHandler{
		rooms:   rooms,
		ballots: ballots,
		tallies: tallies,
		log:     logger.With("handler", "decisions"),
	}
}

// Accepted deadline layouts. The short forms are what an HTML
// datetime-local input submits; they carry no zone and are read as UTC.
var deadlineLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type createRoomRequest struct {
	Title       string   `json:"title"`
	Explanation string   `json:"explanation"`
	Options     []string `json:"options"`
	Deadline    string   `json:"deadline"`
}

type voteRequest struct {
	OptionID string  `json:"optionId"`
	Comment  *string `json:"comment"`
}

type optionResponse struct {
	ID             string `json:"id"`
	Text           string `json:"text"`
	DecisionRoomID string `json:"decisionRoomId"`
}

type roomResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Explanation string           `json:"explanation"`
	Deadline    time.Time        `json:"deadline"`
	CreatorID   string           `json:"creatorId"`
	CreatedAt   time.Time        `json:"createdAt"`
	Options     []optionResponse `json:"options"`
}

type roomSummaryResponse struct {
	roomResponse
	VoteCount int `json:"voteCount"`
}

type roomViewResponse struct {
	roomResponse
	IsCreator    bool `json:"isCreator"`
	VotingClosed bool `json:"votingClosed"`
	HasVoted     bool `json:"hasVoted"`
}

type createRoomResponse struct {
	Message string       `json:"message"`
	Room    roomResponse `json:"room"`
}

type justificationResponse struct {
	VoteID       string `json:"voteId"`
	VoterDisplay string `json:"voterDisplay"`
	OptionText   string `json:"optionText"`
	Comment      string `json:"comment"`
}

type voteResponse struct {
	Message           string                  `json:"message"`
	NewTally          map[string]int          `json:"newTally"`
	NewJustifications []justificationResponse `json:"newJustifications"`
}

type tallyResponse struct {
	Tally          map[string]int          `json:"tally"`
	VotingClosed   bool                    `json:"votingClosed"`
	Justifications []justificationResponse `json:"justifications"`
}

// Create handles POST /api/decisions.
func (h *DecisionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	var req createRoomRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		handleError(w, r, h.log, err, "Server error creating room.")
		return
	}

	created, err := h.rooms.CreateRoom(r.Context(), userID, room.CreateRoomInput{
		Title:       req.Title,
		Explanation: req.Explanation,
		Options:     req.Options,
		Deadline:    deadline,
	})
	if err != nil {
		handleError(w, r, h.log, err, "Server error creating room.")
		return
	}

	writeJSON(w, http.StatusCreated, createRoomResponse{
		Message: "Decision room created successfully!",
		Room:    toRoomResponse(created),
	})
}

// List handles GET /api/decisions: the caller's own rooms, newest first.
func (h *DecisionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	rooms, err := h.rooms.ListRooms(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err, "Server error fetching rooms.")
		return
	}

	resp := make([]roomSummaryResponse, 0, len(rooms))
	for i := range rooms {
		resp = append(resp, roomSummaryResponse{
			roomResponse: toRoomResponse(&rooms[i].Room),
			VoteCount:    rooms[i].VoteCount,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/decisions/{id}.
func (h *DecisionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	roomID, ok := roomIDParam(r)
	if !ok {
		handleError(w, r, h.log, domain.ErrNotFound, "")
		return
	}

	view, err := h.rooms.GetRoom(r.Context(), roomID, userID)
	if err != nil {
		handleError(w, r, h.log, err, "Server error fetching room details.")
		return
	}

	writeJSON(w, http.StatusOK, roomViewResponse{
		roomResponse: toRoomResponse(&view.Room),
		IsCreator:    view.IsCreator,
		VotingClosed: view.VotingClosed,
		HasVoted:     view.HasVoted,
	})
}

// Vote handles POST /api/decisions/{id}/vote.
func (h *DecisionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "You must be logged in to vote.")
		return
	}

	roomID, ok := roomIDParam(r)
	if !ok {
		handleError(w, r, h.log, domain.ErrNotFound, "")
		return
	}

	var req voteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	// A malformed option id cannot belong to the room.
	optionID, err := uuid.Parse(strings.TrimSpace(req.OptionID))
	if err != nil {
		optionID = uuid.Nil
	}

	res, err := h.ballots.CastVote(r.Context(), userID, ballot.CastVoteInput{
		RoomID:   roomID,
		OptionID: optionID,
		Comment:  req.Comment,
	})
	if err != nil {
		handleError(w, r, h.log, err, "Server error casting vote.")
		return
	}

	writeJSON(w, http.StatusOK, voteResponse{
		Message:           "Vote cast successfully!",
		NewTally:          toTallyResponse(res.Tally),
		NewJustifications: toJustificationsResponse(res.Justifications),
	})
}

// Tally handles GET /api/decisions/{id}/tally.
func (h *DecisionHandler) Tally(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	roomID, ok := roomIDParam(r)
	if !ok {
		handleError(w, r, h.log, domain.ErrNotFound, "")
		return
	}

	view, err := h.tallies.GetTally(r.Context(), roomID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			writeError(w, http.StatusForbidden, "You are not authorized to view live tallies for this room.")
			return
		}
		handleError(w, r, h.log, err, "Server error fetching tally.")
		return
	}

	writeJSON(w, http.StatusOK, tallyResponse{
		Tally:          toTallyResponse(view.Tally),
		VotingClosed:   view.VotingClosed,
		Justifications: toJustificationsResponse(view.Justifications),
	})
}

// roomIDParam parses the {id} path segment. Any malformed id names a room
// that cannot exist.
func roomIDParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// parseDeadline returns the zero time for an empty value so the service
// reports the field as required.
func parseDeadline(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, domain.NewValidationError("deadline", "invalid date")
}

func toRoomResponse(rm *domain.Room) roomResponse {
	opts := make([]optionResponse, 0, len(rm.Options))
	for _, o := range rm.Options {
		opts = append(opts, optionResponse{
			ID:             o.ID.String(),
			Text:           o.Text,
			DecisionRoomID: o.RoomID.String(),
		})
	}
	return roomResponse{
		ID:          rm.ID.String(),
		Title:       rm.Title,
		Explanation: rm.Explanation,
		Deadline:    rm.Deadline.UTC(),
		CreatorID:   rm.CreatorID.String(),
		CreatedAt:   rm.CreatedAt.UTC(),
		Options:     opts,
	}
}

func toTallyResponse(t domain.Tally) map[string]int {
	out := make(map[string]int, len(t))
	for id, n := range t {
		out[id.String()] = n
	}
	return out
}

func toJustificationsResponse(js []domain.Justification) []justificationResponse {
	out := make([]justificationResponse, 0, len(js))
	for _, j := range js {
		out = append(out, justificationResponse{
			VoteID:       j.VoteID.String(),
			VoterDisplay: j.VoterDisplay,
			OptionText:   j.OptionText,
			Comment:      j.Comment,
		})
	}
	return out
}
