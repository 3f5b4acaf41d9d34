package smartnotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/smarttrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, note *SmartNote) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.smartnotes.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	eventsJson, attachmentsJson, err := marshalNoteJSON(note)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO smart_note (id, ts, raw, summary, pending, events, attachments)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		note.ID, note.Ts, note.Raw, note.Summary, note.Pending, eventsJson, attachmentsJson,
	)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *SmartNote, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.smartnotes.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	row := r.db.QueryRow(
		ctx,
		`SELECT id, ts, raw, summary, pending, events, attachments
		FROM smart_note
		WHERE id = $1;`,
		id,
	)
	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

func (r *Repo) Update(ctx context.Context, note *SmartNote) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.smartnotes.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", note.ID))

	eventsJson, attachmentsJson, err := marshalNoteJSON(note)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE smart_note
		SET raw = $1, summary = $2, pending = $3, events = $4, attachments = $5
		WHERE id = $6;`,
		note.Raw, note.Summary, note.Pending, eventsJson, attachmentsJson, note.ID,
	)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoteNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.smartnotes.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM smart_note WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoteNotFound
	}
	return nil
}

// List returns all notes, newest first.
func (r *Repo) List(ctx context.Context) (_ []SmartNote, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.smartnotes.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, ts, raw, summary, pending, events, attachments
		FROM smart_note
		ORDER BY ts DESC;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]SmartNote, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, *note)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(notes)))
	return notes, nil
}

func scanNote(row pgx.Row) (*SmartNote, error) {
	var (
		note            SmartNote
		eventsJson      []byte
		attachmentsJson []byte
	)
	if err := row.Scan(
		&note.ID, &note.Ts, &note.Raw, &note.Summary, &note.Pending,
		&eventsJson, &attachmentsJson,
	); err != nil {
		return nil, err
	}

	if len(eventsJson) > 0 {
		if err := json.Unmarshal(eventsJson, &note.Events); err != nil {
			return nil, fmt.Errorf("unmarshal events of note [%s]: %w", note.ID, err)
		}
	}
	if note.Events == nil {
		note.Events = []Event{}
	}
	if len(attachmentsJson) > 0 {
		if err := json.Unmarshal(attachmentsJson, &note.Attachments); err != nil {
			return nil, fmt.Errorf("unmarshal attachments of note [%s]: %w", note.ID, err)
		}
	}
	return &note, nil
}

func marshalNoteJSON(note *SmartNote) (eventsJson, attachmentsJson []byte, err error) {
	events := note.Events
	if events == nil {
		events = []Event{}
	}
	eventsJson, err = json.Marshal(events)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal events: %w", err)
	}
	if len(note.Attachments) > 0 {
		attachmentsJson, err = json.Marshal(note.Attachments)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal attachments: %w", err)
		}
	}
	return eventsJson, attachmentsJson, nil
}
