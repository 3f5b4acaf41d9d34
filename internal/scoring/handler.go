package scoring

import (
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/smarttrack/internal/telemetry/tracing"
	"github.com/2beens/smarttrack/internal/tracking"
	"github.com/2beens/smarttrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type DayRequest struct {
	Tracking          *tracking.DailyTracking `json:"tracking"`
	CheckIn           *tracking.DailyCheckIn  `json:"checkIn"`
	User              *tracking.User          `json:"user"`
	EnabledActivities []tracking.Activity     `json:"enabledActivities"`
}

type DayResponse struct {
	Completion DayCompletionResult  `json:"completion"`
	Streak     DayStreakScoreResult `json:"streak"`
	Progress   DayProgressSummary   `json:"progress"`
}

type StreakRequest struct {
	TrackingByDay     map[string]tracking.DailyTracking `json:"trackingByDay"`
	CheckInsByDay     map[string]tracking.DailyCheckIn  `json:"checkInsByDay"`
	User              *tracking.User                    `json:"user"`
	EnabledActivities []tracking.Activity               `json:"enabledActivities"`
	// Today is a 2006-01-02 date, defaults to the current day.
	Today string `json:"today"`
}

type StreakResponse struct {
	Streak     int                  `json:"streak"`
	Today      string               `json:"today"`
	TodayScore DayStreakScoreResult `json:"todayScore"`
}

// Evaluate computes the streak ending at req.Today, or at now when Today
// is empty. Dates are calendar days in loc.
func (req StreakRequest) Evaluate(now time.Time, loc *time.Location) (StreakResponse, error) {
	today := now.In(loc)
	if req.Today != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Today, loc)
		if err != nil {
			return StreakResponse{}, fmt.Errorf("parse today [%s]: %w", req.Today, err)
		}
		today = parsed
	}
	todayKey := today.Format("2006-01-02")

	var todayTracking *tracking.DailyTracking
	if t, ok := req.TrackingByDay[todayKey]; ok {
		todayTracking = &t
	}
	var todayCheckIn *tracking.DailyCheckIn
	if c, ok := req.CheckInsByDay[todayKey]; ok {
		todayCheckIn = &c
	}

	return StreakResponse{
		Streak:     CalculateCompletionStreak(req.TrackingByDay, req.CheckInsByDay, req.User, req.EnabledActivities, today),
		Today:      todayKey,
		TodayScore: GetDayStreakScore(todayTracking, todayCheckIn, req.User, req.EnabledActivities),
	}, nil
}

type Handler struct {
	loc *time.Location
	now func() time.Time
}

func NewHandler(loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		loc: loc,
		now: time.Now,
	}
}

func (h *Handler) HandleDay(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.scoring.day")
	defer span.End()

	var req DayRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Errorf("score day, decode request: %s", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	completion := GetDayCompletion(req.Tracking, req.User, req.EnabledActivities)
	streak := GetDayStreakScore(req.Tracking, req.CheckIn, req.User, req.EnabledActivities)
	span.SetAttributes(
		attribute.Int("completion", completion.Percent),
		attribute.Int("streak.score", streak.Score),
	)

	pkg.WriteJSONOK(w, DayResponse{
		Completion: completion,
		Streak:     streak,
		Progress:   GetDayProgressSummary(req.Tracking, req.User, req.EnabledActivities),
	})
}

func (h *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.scoring.streak")
	defer span.End()

	var req StreakRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Errorf("score streak, decode request: %s", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	resp, err := req.Evaluate(h.now(), h.loc)
	if err != nil {
		log.Debugf("score streak: %s", err)
		http.Error(w, "error, invalid today date", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("streak", resp.Streak))

	pkg.WriteJSONOK(w, resp)
}
