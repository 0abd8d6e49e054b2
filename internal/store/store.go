// Package store keeps an activity journal of editing sessions in
// Postgres: one row per history push, undo and redo.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inamate/core2d/internal/history"
)

// DB is the part of pgxpool.Pool the journal uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// NewPool connects to databaseURL and checks the connection.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS session_journal (
	id         TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	user_id    TEXT NOT NULL DEFAULT '',
	op         TEXT NOT NULL,
	label      TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS session_journal_session_idx ON session_journal (session_id, created_at);
`

const insertEntry = `INSERT INTO session_journal (id, session_id, user_id, op, label, created_at) VALUES ($1, $2, $3, $4, $5, $6)`

const selectRecent = `
SELECT id, session_id, user_id, op, label, created_at
FROM session_journal
WHERE session_id = $1
ORDER BY created_at DESC
LIMIT $2`

type Entry struct {
	ID        string    `json:"id" db:"id"`
	SessionID string    `json:"sessionId" db:"session_id"`
	UserID    string    `json:"userId,omitempty" db:"user_id"`
	Op        string    `json:"op" db:"op"`
	Label     string    `json:"label" db:"label"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Journal buffers entries and writes them from its own goroutine so the
// editing loop never waits on the database.
type Journal struct {
	db      DB
	entries chan Entry
	now     func() time.Time
	done    chan struct{}
}

func NewJournal(db DB, buffer int) *Journal {
	if buffer <= 0 {
		buffer = 256
	}
	return &Journal{
		db:      db,
		entries: make(chan Entry, buffer),
		now:     time.Now,
		done:    make(chan struct{}),
	}
}

// Migrate creates the journal table.
func (j *Journal) Migrate(ctx context.Context) error {
	if _, err := j.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate journal: %w", err)
	}
	return nil
}

// Record queues one history change. A full buffer drops the entry.
func (j *Journal) Record(sessionID, userID string, op history.Op, label string) {
	e := Entry{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		UserID:    userID,
		Op:        string(op),
		Label:     label,
		CreatedAt: j.now(),
	}
	select {
	case j.entries <- e:
	default:
		slog.Warn("journal buffer full, dropping entry", "session", sessionID, "op", op)
	}
}

// Run writes queued entries until ctx is cancelled, then flushes what is
// left with a short deadline.
func (j *Journal) Run(ctx context.Context) {
	defer close(j.done)
	for {
		select {
		case e := <-j.entries:
			j.write(ctx, e)
		case <-ctx.Done():
			j.flush()
			return
		}
	}
}

// Done is closed when Run has returned.
func (j *Journal) Done() <-chan struct{} { return j.done }

func (j *Journal) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		select {
		case e := <-j.entries:
			j.write(ctx, e)
		default:
			return
		}
	}
}

func (j *Journal) write(ctx context.Context, e Entry) {
	_, err := j.db.Exec(ctx, insertEntry, e.ID, e.SessionID, e.UserID, e.Op, e.Label, e.CreatedAt)
	if err != nil {
		slog.Error("write journal entry", "error", err, "session", e.SessionID)
	}
}

// Recent returns the newest entries of a session, newest first.
func (j *Journal) Recent(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	rows, err := j.db.Query(ctx, selectRecent, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[Entry])
	if err != nil {
		return nil, fmt.Errorf("collect journal: %w", err)
	}
	return entries, nil
}
