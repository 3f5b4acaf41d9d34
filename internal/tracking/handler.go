package tracking

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/smarttrack/internal/telemetry/tracing"
	"github.com/2beens/smarttrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=tracking_test

type contributionsReader interface {
	Get(ctx context.Context, dateKey string) (*Contribution, error)
	All(ctx context.Context) (map[string]*Contribution, error)
}

type contributionsSyncer interface {
	Sync(ctx context.Context)
}

type SyncResponse struct {
	Days          int                      `json:"days"`
	Contributions map[string]*Contribution `json:"contributions"`
}

type CombinedRequest struct {
	Tracking map[string]DailyTracking `json:"tracking"`
}

type Handler struct {
	store  contributionsReader
	syncer contributionsSyncer
}

func NewHandler(store contributionsReader, syncer contributionsSyncer) *Handler {
	return &Handler{
		store:  store,
		syncer: syncer,
	}
}

func (h *Handler) HandleAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.all")
	defer span.End()

	contributions, err := h.store.All(ctx)
	if err != nil {
		log.Errorf("get all contributions: %s", err)
		http.Error(w, "failed to get contributions", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, contributions)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.get")
	defer span.End()

	dateKey := mux.Vars(r)["date"]
	if dateKey == "" {
		http.Error(w, "error, date empty", http.StatusBadRequest)
		return
	}

	contribution, err := h.store.Get(ctx, dateKey)
	if err != nil {
		if errors.Is(err, ErrContributionNotFound) {
			http.Error(w, "error, contribution not found", http.StatusNotFound)
			return
		}
		log.Errorf("get contribution [%s]: %s", dateKey, err)
		http.Error(w, "failed to get contribution", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, contribution)
}

// HandleSync runs a sync pass and responds with what is published after it.
func (h *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.sync")
	defer span.End()

	h.syncer.Sync(ctx)

	contributions, err := h.store.All(ctx)
	if err != nil {
		log.Errorf("sync, get all contributions: %s", err)
		http.Error(w, "failed to get contributions", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, SyncResponse{
		Days:          len(contributions),
		Contributions: contributions,
	})
}

// HandleCombined merges the posted manual tracking with the published
// contributions.
func (h *Handler) HandleCombined(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.combined")
	defer span.End()

	var req CombinedRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Errorf("combined tracking, decode request: %s", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	contributions, err := h.store.All(ctx)
	if err != nil {
		log.Errorf("combined tracking, get all contributions: %s", err)
		http.Error(w, "failed to get contributions", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, CombineTrackingWithSmart(req.Tracking, contributions))
}
