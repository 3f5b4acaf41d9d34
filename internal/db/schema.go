package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const smartNoteSchema = `
CREATE TABLE IF NOT EXISTS smart_note
(
    id          VARCHAR PRIMARY KEY,
    ts          BIGINT  NOT NULL,
    raw         TEXT    NOT NULL,
    summary     TEXT    NOT NULL DEFAULT '',
    pending     BOOLEAN NOT NULL DEFAULT FALSE,
    events      JSONB   NOT NULL DEFAULT '[]'::jsonb,
    attachments JSONB
);
CREATE INDEX IF NOT EXISTS ix_smart_note_ts ON smart_note USING btree (ts);
`

// EnsureSchema creates the tables used by the service if they are missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, smartNoteSchema); err != nil {
		return fmt.Errorf("create smart_note table: %w", err)
	}
	return nil
}
