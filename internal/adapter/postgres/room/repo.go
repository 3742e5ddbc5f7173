// Package room implements the decision room repository using PostgreSQL.
package room

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/decision-rooms/internal/adapter/postgres"
	"github.com/heartmarshall/decision-rooms/internal/domain"
)

const (
	roomsTable   = "decision_rooms"
	optionsTable = "options"
)

var (
	roomColumns   = []string{"id", "title", "explanation", "deadline", "creator_id", "created_at"}
	optionColumns = []string{"id", "room_id", "text", "position"}
)

// Repo provides decision room and option persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new room repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts the room and all of its options. The caller must run it inside
// TxManager.RunInTx for the room and its options to be persisted atomically.
func (r *Repo) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	if len(room.Options) == 0 {
		return nil, fmt.Errorf("room %s: no options: %w", room.ID, domain.ErrValidation)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	insertRoom := postgres.Builder.Insert(roomsTable).
		Columns(roomColumns...).
		Values(room.ID, room.Title, room.Explanation, room.Deadline, room.CreatorID, room.CreatedAt).
		Suffix("RETURNING id, title, explanation, deadline, creator_id, created_at")

	var row roomRow
	if err := postgres.Get(ctx, q, &row, insertRoom); err != nil {
		return nil, postgres.MapError(err, "room", room.ID, postgres.ConstraintErrors{
			"decision_rooms_title_not_blank":       domain.ErrValidation,
			"decision_rooms_explanation_not_blank": domain.ErrValidation,
		})
	}

	insertOptions := postgres.Builder.Insert(optionsTable).
		Columns(optionColumns...).
		Suffix("RETURNING id, room_id, text, position")
	for _, o := range room.Options {
		insertOptions = insertOptions.Values(o.ID, room.ID, o.Text, o.Position)
	}

	var opts []optionRow
	if err := postgres.Select(ctx, q, &opts, insertOptions); err != nil {
		return nil, postgres.MapError(err, "room", room.ID, postgres.ConstraintErrors{
			"options_room_position_key": domain.ErrValidation,
			"options_position_range":    domain.ErrValidation,
			"options_text_not_blank":    domain.ErrValidation,
		})
	}

	result := row.toDomain(sortByPosition(opts))
	return &result, nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a room with its options ordered by position.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row roomRow
	sel := postgres.Builder.Select(roomColumns...).From(roomsTable).Where(sq.Eq{"id": id})
	if err := postgres.Get(ctx, q, &row, sel); err != nil {
		return nil, postgres.MapError(err, "room", id, nil)
	}

	var opts []optionRow
	selOpts := postgres.Builder.Select(optionColumns...).
		From(optionsTable).
		Where(sq.Eq{"room_id": id}).
		OrderBy("position")
	if err := postgres.Select(ctx, q, &opts, selOpts); err != nil {
		return nil, postgres.MapError(err, "room", id, nil)
	}

	result := row.toDomain(opts)
	return &result, nil
}

// GetOption returns the option only if it belongs to roomID.
func (r *Repo) GetOption(ctx context.Context, roomID, optionID uuid.UUID) (*domain.Option, error) {
	sel := postgres.Builder.Select(optionColumns...).
		From(optionsTable).
		Where(sq.Eq{"id": optionID, "room_id": roomID})

	var row optionRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sel); err != nil {
		return nil, postgres.MapError(err, "option", optionID, nil)
	}

	o := row.toDomain()
	return &o, nil
}

// ListByCreator returns the creator's rooms, newest first, each with its options
// and the number of votes cast so far.
func (r *Repo) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.RoomSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sel := postgres.Builder.Select(
		"r.id", "r.title", "r.explanation", "r.deadline", "r.creator_id", "r.created_at",
		"(SELECT count(*) FROM votes v WHERE v.room_id = r.id) AS vote_count",
	).
		From(roomsTable + " r").
		Where(sq.Eq{"r.creator_id": creatorID}).
		OrderBy("r.created_at DESC", "r.id DESC")

	var rows []summaryRow
	if err := postgres.Select(ctx, q, &rows, sel); err != nil {
		return nil, postgres.MapError(err, "user rooms", creatorID, nil)
	}
	if len(rows) == 0 {
		return []domain.RoomSummary{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	var opts []optionRow
	selOpts := postgres.Builder.Select(optionColumns...).
		From(optionsTable).
		Where(sq.Eq{"room_id": ids}).
		OrderBy("room_id", "position")
	if err := postgres.Select(ctx, q, &opts, selOpts); err != nil {
		return nil, postgres.MapError(err, "user rooms", creatorID, nil)
	}

	byRoom := make(map[uuid.UUID][]optionRow, len(rows))
	for _, o := range opts {
		byRoom[o.RoomID] = append(byRoom[o.RoomID], o)
	}

	result := make([]domain.RoomSummary, len(rows))
	for i, row := range rows {
		result[i] = domain.RoomSummary{
			Room:      row.roomRow.toDomain(byRoom[row.ID]),
			VoteCount: row.VoteCount,
		}
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type roomRow struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Explanation string    `db:"explanation"`
	Deadline    time.Time `db:"deadline"`
	CreatorID   uuid.UUID `db:"creator_id"`
	CreatedAt   time.Time `db:"created_at"`
}

type summaryRow struct {
	roomRow
	VoteCount int `db:"vote_count"`
}

type optionRow struct {
	ID       uuid.UUID `db:"id"`
	RoomID   uuid.UUID `db:"room_id"`
	Text     string    `db:"text"`
	Position int       `db:"position"`
}

func (r roomRow) toDomain(opts []optionRow) domain.Room {
	room := domain.Room{
		ID:          r.ID,
		Title:       r.Title,
		Explanation: r.Explanation,
		Deadline:    r.Deadline,
		CreatorID:   r.CreatorID,
		CreatedAt:   r.CreatedAt,
		Options:     make([]domain.Option, len(opts)),
	}
	for i, o := range opts {
		room.Options[i] = o.toDomain()
	}
	return room
}

func (o optionRow) toDomain() domain.Option {
	return domain.Option{ID: o.ID, RoomID: o.RoomID, Text: o.Text, Position: o.Position}
}

// sortByPosition orders RETURNING rows, which PostgreSQL does not guarantee to
// emit in VALUES order.
func sortByPosition(opts []optionRow) []optionRow {
	slices.SortFunc(opts, func(a, b optionRow) int { return cmp.Compare(a.Position, b.Position) })
	return opts
}
