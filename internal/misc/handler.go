package misc

import (
	"context"
	"net/http"
	"sort"

	"github.com/2beens/smarttrack/internal/telemetry/tracing"
	"github.com/2beens/smarttrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// HealthCheck reports whether a dependency (db, redis, ...) is reachable.
type HealthCheck func(ctx context.Context) error

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type Handler struct {
	versionInfo string
	checks      map[string]HealthCheck
}

func NewHandler(versionInfo string, checks map[string]HealthCheck) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		checks:      checks,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteResponse(w, pkg.ContentType.Text, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteResponse(w, pkg.ContentType.Text, handler.versionInfo)
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	names := make([]string, 0, len(handler.checks))
	for name := range handler.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := HealthResponse{
		Status: "ok",
		Checks: make(map[string]string, len(names)),
	}
	for _, name := range names {
		if err := handler.checks[name](ctx); err != nil {
			log.Warnf("health check [%s] failed: %s", name, err)
			resp.Checks[name] = err.Error()
			resp.Status = "degraded"
			continue
		}
		resp.Checks[name] = "ok"
	}

	span.SetAttributes(attribute.String("health.status", resp.Status))
	if resp.Status != "ok" {
		pkg.WriteJSON(w, resp, http.StatusServiceUnavailable)
		return
	}
	pkg.WriteJSONOK(w, resp)
}
