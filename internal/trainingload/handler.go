package trainingload

import (
	"net/http"

	"github.com/2beens/smarttrack/internal/telemetry/tracing"
	"github.com/2beens/smarttrack/internal/tracking"
	"github.com/2beens/smarttrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// LoadRequest carries either explicit sessions or a tracked day. When
// Tracking is set the sessions and pushups come from it, and the check-in
// falls back to the top level scores.
type LoadRequest struct {
	Input
	Tracking *tracking.DailyTracking `json:"tracking,omitempty"`
	CheckIn  *tracking.DailyCheckIn  `json:"checkIn,omitempty"`
}

// Compute picks the input source and computes the load.
func (r LoadRequest) Compute() Result {
	if r.Tracking == nil {
		return ComputeDailyTrainingLoadV1(r.Input)
	}

	checkIn := tracking.DailyCheckIn{
		SleepScore:    r.SleepScore,
		RecoveryScore: r.RecoveryScore,
		Sick:          r.Sick,
	}
	if r.CheckIn != nil {
		checkIn = *r.CheckIn
	}
	return ComputeForDay(r.Tracking, checkIn)
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) HandleCompute(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingload.compute")
	defer span.End()

	var req LoadRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Errorf("training load, decode request: %s", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	result := req.Compute()
	span.SetAttributes(
		attribute.Int("load", result.Load),
		attribute.Bool("from.tracking", req.Tracking != nil),
	)
	pkg.WriteJSONOK(w, result)
}
