package tracking

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/2beens/smarttrack/internal/smartnotes"
	"github.com/2beens/smarttrack/internal/telemetry/metrics"
	"github.com/2beens/smarttrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
)

const syncFlightKey = "contributions-sync"

type notesLister interface {
	List(ctx context.Context) ([]smartnotes.SmartNote, error)
}

// Syncer re-aggregates all notes and publishes the contributions. At most
// one pass runs at a time; triggers arriving during a pass are folded into
// one more pass over the full note set.
type Syncer struct {
	notes   notesLister
	store   ContributionStore
	loc     *time.Location
	metrics *metrics.Manager

	group singleflight.Group
	dirty atomic.Bool
}

func NewSyncer(
	notes notesLister,
	store ContributionStore,
	loc *time.Location,
	metricsManager *metrics.Manager,
) *Syncer {
	if loc == nil {
		loc = time.Local
	}
	return &Syncer{
		notes:   notes,
		store:   store,
		loc:     loc,
		metrics: metricsManager,
	}
}

// Sync returns once a pass that started after this call has finished.
// Pass failures are logged and counted, never returned; a failed pass
// leaves the previously published contributions in place.
func (s *Syncer) Sync(ctx context.Context) {
	s.dirty.Store(true)
	for {
		_, _, _ = s.group.Do(syncFlightKey, func() (any, error) {
			passCtx := context.WithoutCancel(ctx)
			for s.dirty.CompareAndSwap(true, false) {
				s.runPass(passCtx)
			}
			return nil, nil
		})
		if !s.dirty.Load() {
			return
		}
	}
}

// Run syncs once, then again on every change signal until ctx is done.
func (s *Syncer) Run(ctx context.Context, changes <-chan struct{}) {
	s.Sync(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Debugln("contributions syncer stopped")
			return
		case _, ok := <-changes:
			if !ok {
				log.Debugln("contributions change feed closed")
				return
			}
			s.Sync(ctx)
		}
	}
}

func (s *Syncer) runPass(ctx context.Context) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("contributions sync pass panicked: %v", r)
			s.metrics.CounterSyncFailures.Inc()
		}
		s.metrics.HistSyncDuration.Observe(time.Since(start).Seconds())
	}()

	s.metrics.CounterSyncPasses.Inc()
	published, err := s.pass(ctx)
	if err != nil {
		log.Errorf("contributions sync pass: %s", err)
		s.metrics.CounterSyncFailures.Inc()
		return
	}

	s.metrics.GaugePublishedDays.Set(float64(published))
	log.Tracef("contributions sync pass published %d days", published)
}

func (s *Syncer) pass(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "syncer.contributions.pass")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	notes, err := s.notes.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list notes: %w", err)
	}

	contributions := CollectContributions(notes, s.loc)
	span.SetAttributes(
		attribute.Int("notes", len(notes)),
		attribute.Int("days", len(contributions)),
	)

	if err := s.store.Publish(ctx, contributions); err != nil {
		return 0, fmt.Errorf("publish: %w", err)
	}
	return len(contributions), nil
}

// ChangeFeed turns note store mutations into sync triggers. Signals that
// arrive while one is already queued are coalesced.
type ChangeFeed struct {
	changes chan struct{}
}

func NewChangeFeed() *ChangeFeed {
	return &ChangeFeed{
		changes: make(chan struct{}, 1),
	}
}

func (f *ChangeFeed) NotesChanged() {
	select {
	case f.changes <- struct{}{}:
	default:
	}
}

func (f *ChangeFeed) Changes() <-chan struct{} {
	return f.changes
}
