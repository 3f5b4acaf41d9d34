package smartnotes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/smarttrack/internal/telemetry/metrics"
	"github.com/2beens/smarttrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=smartnotes_test

type notesRepo interface {
	Add(ctx context.Context, note *SmartNote) error
	Get(ctx context.Context, id string) (*SmartNote, error)
	Update(ctx context.Context, note *SmartNote) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]SmartNote, error)
}

// changeListener is told about every note store mutation.
type changeListener interface {
	NotesChanged()
}

type Service struct {
	repo     notesRepo
	listener changeListener
	metrics  *metrics.Manager
	now      func() time.Time
}

func NewService(repo notesRepo, listener changeListener, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:     repo,
		listener: listener,
		metrics:  metricsManager,
		now:      time.Now,
	}
}

type ProcessParams struct {
	Raw string
	// Manual notes are stored as typed, without extraction.
	Manual      bool
	Attachments []Attachment
}

// Process stores a new note. Unless manual, events are extracted from the
// raw text, stamped with the note timestamp and summarized.
func (s *Service) Process(ctx context.Context, params ProcessParams) (_ *SmartNote, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.smartnotes.process")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	raw := strings.TrimSpace(params.Raw)
	if raw == "" {
		return nil, ErrEmptyNote
	}

	note := &SmartNote{
		ID:          uuid.NewString(),
		Ts:          s.now().UnixMilli(),
		Raw:         raw,
		Summary:     raw,
		Events:      []Event{},
		Attachments: params.Attachments,
	}

	if !params.Manual {
		note.Events = stampEvents(Extract(raw).Candidates, note.Ts, SourceHeuristic)
		note.Summary = BuildSummary(raw, note.Events)
	}
	span.SetAttributes(
		attribute.Bool("manual", params.Manual),
		attribute.Int("events", len(note.Events)),
	)

	if err := s.repo.Add(ctx, note); err != nil {
		return nil, fmt.Errorf("add note: %w", err)
	}

	s.recordEvents(note.Events)
	if s.metrics != nil {
		s.metrics.CounterNotes.Inc()
	}
	s.notesChanged()

	log.Debugf("smart note [%s] added with %d events", note.ID, len(note.Events))
	return note, nil
}

// Update replaces the raw text of a note and re-extracts its events.
// Imported (non heuristic) events survive the update and are merged
// on top of the fresh candidates.
func (s *Service) Update(ctx context.Context, id, raw string) (_ *SmartNote, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.smartnotes.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyNote
	}

	note, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}

	imported := make([]Event, 0)
	for _, e := range note.Events {
		if e.Source != SourceHeuristic {
			imported = append(imported, e)
		}
	}

	candidates := stampEvents(Extract(raw).Candidates, note.Ts, SourceHeuristic)
	note.Raw = raw
	note.Events = MergeEvents(candidates, imported)
	note.Summary = BuildSummary(raw, note.Events)
	note.Pending = false

	if err := s.repo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	s.recordEvents(candidates)
	s.notesChanged()
	return note, nil
}

// AttachEvents merges externally produced events (llm or manual) into a note.
func (s *Service) AttachEvents(ctx context.Context, id string, events []Event) (_ *SmartNote, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.smartnotes.attachevents")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id), attribute.Int("incoming", len(events)))

	for i, e := range events {
		if e.Source == "" {
			events[i].Source = SourceManual
		}
		if err := events[i].Validate(); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}

	note, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}

	incoming := make([]Event, 0, len(events))
	for _, e := range events {
		incoming = append(incoming, stampEvent(e, note.Ts, e.Source))
	}
	note.Events = MergeEvents(note.Events, incoming)
	note.Summary = BuildSummary(note.Raw, note.Events)

	if err := s.repo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	s.notesChanged()
	return note, nil
}

func (s *Service) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.smartnotes.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	s.notesChanged()
	return nil
}

func (s *Service) List(ctx context.Context) (_ []SmartNote, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.smartnotes.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (s *Service) notesChanged() {
	if s.listener != nil {
		s.listener.NotesChanged()
	}
}

func (s *Service) recordEvents(events []Event) {
	if s.metrics == nil {
		return
	}
	for _, e := range events {
		s.metrics.CounterExtractedEvents.WithLabelValues(string(e.Kind)).Inc()
	}
}

func stampEvents(events []Event, noteTs int64, source Source) []Event {
	stamped := make([]Event, 0, len(events))
	for _, e := range events {
		stamped = append(stamped, stampEvent(e, noteTs, source))
	}
	return stamped
}

// stampEvent ties an event to its note: same timestamp, known source, an id.
func stampEvent(e Event, noteTs int64, source Source) Event {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.Ts = noteTs
	e.Source = source
	return e
}
