package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/decision-rooms/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique username and a dummy password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + uniqueSuffix(),
		PasswordHash: "$2a$04$invalidinvalidinvalidinvalidinvalidinvalidinvalidinvali",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedRoom creates a room owned by creatorID with the given option texts and deadline.
// Returns a fully populated domain.Room with options in the given order.
func SeedRoom(t *testing.T, pool *pgxpool.Pool, creatorID uuid.UUID, deadline time.Time, options ...string) domain.Room {
	t.Helper()
	ctx := context.Background()

	if len(options) == 0 {
		options = []string{"Option A", "Option B"}
	}

	room := domain.Room{
		ID:          uuid.New(),
		Title:       "Room " + uniqueSuffix(),
		Explanation: "Seeded decision room",
		Deadline:    deadline.UTC().Truncate(time.Microsecond),
		CreatorID:   creatorID,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO decision_rooms (id, title, explanation, deadline, creator_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		room.ID, room.Title, room.Explanation, room.Deadline, room.CreatorID, room.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRoom insert room: %v", err)
	}

	for i, text := range options {
		opt := domain.Option{ID: uuid.New(), RoomID: room.ID, Text: text, Position: i}
		_, err := pool.Exec(ctx,
			`INSERT INTO options (id, room_id, text, position) VALUES ($1, $2, $3, $4)`,
			opt.ID, opt.RoomID, opt.Text, opt.Position,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedRoom insert option %d: %v", i, err)
		}
		room.Options = append(room.Options, opt)
	}

	return room
}

// SeedVote records a vote directly, bypassing the ledger checks.
func SeedVote(t *testing.T, pool *pgxpool.Pool, roomID, optionID, voterID uuid.UUID, comment *string, createdAt time.Time) domain.Vote {
	t.Helper()

	vote := domain.Vote{
		ID:        uuid.New(),
		RoomID:    roomID,
		OptionID:  optionID,
		VoterID:   voterID,
		Comment:   comment,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO votes (id, room_id, option_id, voter_id, comment, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		vote.ID, vote.RoomID, vote.OptionID, vote.VoterID, vote.Comment, vote.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVote insert: %v", err)
	}

	return vote
}
