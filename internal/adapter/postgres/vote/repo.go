// Package vote implements the vote ledger repository using PostgreSQL.
package vote

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/decision-rooms/internal/adapter/postgres"
	"github.com/heartmarshall/decision-rooms/internal/domain"
)

const table = "votes"

var columns = []string{"id", "room_id", "option_id", "voter_id", "comment", "created_at"}

// createConstraints resolves insert failures to the ledger's outcomes.
// The unique pair is the durable single-vote guarantee; the composite foreign
// key rejects options that belong to another room.
var createConstraints = postgres.ConstraintErrors{
	"votes_room_voter_key":      domain.ErrDuplicateVote,
	"votes_option_in_room_fkey": domain.ErrInvalidOption,
	"votes_room_fkey":           domain.ErrNotFound,
	"votes_comment_not_blank":   domain.ErrValidation,
}

// Repo provides vote persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vote repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create records a vote. A second vote by the same voter in the same room
// fails with domain.ErrDuplicateVote regardless of how the requests interleave.
func (r *Repo) Create(ctx context.Context, v *domain.Vote) (*domain.Vote, error) {
	q := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(v.ID, v.RoomID, v.OptionID, v.VoterID, v.Comment, v.CreatedAt).
		Suffix("RETURNING id, room_id, option_id, voter_id, comment, created_at")

	var row voteRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "vote", v.ID, createConstraints)
	}

	result := row.toDomain()
	return &result, nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// Exists reports whether voterID has already voted in roomID.
func (r *Repo) Exists(ctx context.Context, roomID, voterID uuid.UUID) (bool, error) {
	q := postgres.Builder.Select().
		Column(sq.Expr("EXISTS(SELECT 1 FROM votes WHERE room_id = ? AND voter_id = ?)", roomID, voterID))

	var exists bool
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &exists, q); err != nil {
		return false, postgres.MapError(err, "vote", roomID, nil)
	}
	return exists, nil
}

// CountByOption returns the number of votes per option of roomID.
// Options without votes are absent from the result.
func (r *Repo) CountByOption(ctx context.Context, roomID uuid.UUID) (domain.Tally, error) {
	q := postgres.Builder.Select("option_id", "count(*) AS votes").
		From(table).
		Where(sq.Eq{"room_id": roomID}).
		GroupBy("option_id")

	var rows []countRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "tally", roomID, nil)
	}

	tally := make(domain.Tally, len(rows))
	for _, row := range rows {
		tally[row.OptionID] = row.Votes
	}
	return tally, nil
}

// ListJustifications returns the commented votes of roomID in the order they
// were cast, ties broken by vote id.
func (r *Repo) ListJustifications(ctx context.Context, roomID uuid.UUID) ([]domain.Justification, error) {
	q := postgres.Builder.Select("v.id", "u.username", "o.text AS option_text", "v.comment").
		From(table + " v").
		Join("options o ON o.id = v.option_id AND o.room_id = v.room_id").
		LeftJoin("users u ON u.id = v.voter_id").
		Where(sq.Eq{"v.room_id": roomID}).
		Where(sq.NotEq{"v.comment": nil}).
		OrderBy("v.created_at", "v.id")

	var rows []justificationRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "justifications", roomID, nil)
	}

	result := make([]domain.Justification, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type voteRow struct {
	ID        uuid.UUID `db:"id"`
	RoomID    uuid.UUID `db:"room_id"`
	OptionID  uuid.UUID `db:"option_id"`
	VoterID   uuid.UUID `db:"voter_id"`
	Comment   *string   `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}

func (r voteRow) toDomain() domain.Vote {
	return domain.Vote{
		ID:        r.ID,
		RoomID:    r.RoomID,
		OptionID:  r.OptionID,
		VoterID:   r.VoterID,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

type countRow struct {
	OptionID uuid.UUID `db:"option_id"`
	Votes    int       `db:"votes"`
}

type justificationRow struct {
	ID         uuid.UUID `db:"id"`
	Username   *string   `db:"username"`
	OptionText string    `db:"option_text"`
	Comment    string    `db:"comment"`
}

func (r justificationRow) toDomain() domain.Justification {
	var voter *domain.User
	if r.Username != nil {
		voter = &domain.User{Username: *r.Username}
	}
	return domain.Justification{
		VoteID:       r.ID,
		VoterDisplay: voter.DisplayName(),
		OptionText:   r.OptionText,
		Comment:      r.Comment,
	}
}
