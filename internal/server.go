package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/smarttrack/internal/config"
	"github.com/2beens/smarttrack/internal/db"
	"github.com/2beens/smarttrack/internal/middleware"
	"github.com/2beens/smarttrack/internal/misc"
	"github.com/2beens/smarttrack/internal/scoring"
	"github.com/2beens/smarttrack/internal/smartnotes"
	"github.com/2beens/smarttrack/internal/telemetry/metrics"
	"github.com/2beens/smarttrack/internal/telemetry/tracing"
	"github.com/2beens/smarttrack/internal/tracking"
	"github.com/2beens/smarttrack/internal/trainingload"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	loc         *time.Location
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	contributionStore tracking.ContributionStore
	notesService      *smartnotes.Service
	syncer            *tracking.Syncer
	changeFeed        *tracking.ChangeFeed
	syncDone          chan struct{}

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	DBPassword              string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	loc, err := time.LoadLocation(params.Config.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone [%s]: %w", params.Config.TimeZone, err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.DBPassword,
		MaxConns:       params.Config.PostgresMaxConns,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}
	if err := db.EnsureSchema(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("ensure db schema: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("smarttrack", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "smarttrack-backend", rdb)
	if err != nil {
		return nil, err
	}

	var contributionStore tracking.ContributionStore
	switch params.Config.ContributionStore {
	case config.ContributionStoreRedis:
		contributionStore = tracking.NewRedisStore(rdb)
	case config.ContributionStoreMemory:
		contributionStore = tracking.NewMemoryStore(params.Config.ContributionCacheSizeMB * 1024 * 1024)
	default:
		return nil, fmt.Errorf("unknown contribution store: %s", params.Config.ContributionStore)
	}
	log.Debugf("using [%s] contribution store", params.Config.ContributionStore)

	notesRepo := smartnotes.NewRepo(dbPool)
	changeFeed := tracking.NewChangeFeed()

	return &Server{
		versionInfo: params.VersionInfo,
		config:      params.Config,
		loc:         loc,
		dbPool:      dbPool,
		redisClient: rdb,

		contributionStore: contributionStore,
		notesService:      smartnotes.NewService(notesRepo, changeFeed, metricsManager),
		syncer:            tracking.NewSyncer(notesRepo, contributionStore, loc, metricsManager),
		changeFeed:        changeFeed,
		syncDone:          make(chan struct{}),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("smarttrack-router"))

	// preflight requests only need the CORS headers
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Name("preflight")

	miscHandler := misc.NewHandler(s.versionInfo, map[string]misc.HealthCheck{
		"db": s.dbPool.Ping,
		"redis": func(ctx context.Context) error {
			return s.redisClient.Ping(ctx).Err()
		},
	})
	miscHandler.SetupRoutes(r)

	notesHandler := smartnotes.NewHandler(s.notesService)

	// note ingestion goes through the rate limiter
	ingestRouter := r.PathPrefix("/notes").Methods("POST").Subrouter()
	ingestRouter.HandleFunc("", notesHandler.HandleAdd).Name("new-note")
	ingestRouter.HandleFunc("/extract", notesHandler.HandleExtract).Name("extract-note")
	ingestRouter.HandleFunc("/{id}/events", notesHandler.HandleAttachEvents).Name("attach-note-events")
	ingestRouter.Use(middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		"notes-ingest",
		s.config.NotesRateLimitAllowedPerMin,
		s.metricsManager,
	))

	r.HandleFunc("/notes", notesHandler.HandleList).Methods("GET").Name("list-notes")
	r.HandleFunc("/notes/{id}", notesHandler.HandleUpdate).Methods("PUT").Name("update-note")
	r.HandleFunc("/notes/{id}", notesHandler.HandleDelete).Methods("DELETE").Name("remove-note")

	trackingHandler := tracking.NewHandler(s.contributionStore, s.syncer)
	r.HandleFunc("/tracking/contributions", trackingHandler.HandleAll).Methods("GET").Name("list-contributions")
	r.HandleFunc("/tracking/contributions/{date}", trackingHandler.HandleGet).Methods("GET").Name("get-contribution")
	r.HandleFunc("/tracking/sync", trackingHandler.HandleSync).Methods("POST").Name("sync-contributions")
	r.HandleFunc("/tracking/combined", trackingHandler.HandleCombined).Methods("POST").Name("combined-tracking")

	scoringHandler := scoring.NewHandler(s.loc)
	r.HandleFunc("/scoring/day", scoringHandler.HandleDay).Methods("POST").Name("score-day")
	r.HandleFunc("/scoring/streak", scoringHandler.HandleStreak).Methods("POST").Name("score-streak")

	trainingLoadHandler := trainingload.NewHandler()
	r.HandleFunc("/training-load", trainingLoadHandler.HandleCompute).Methods("POST").Name("training-load")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.LimitAndDrainRequest(int64(s.config.MaxRequestBodyKB) * 1024))

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	// initial pass, then one per notes change
	go func() {
		defer close(s.syncDone)
		s.syncer.Run(ctx, s.changeFeed.Changes())
	}()

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

// GracefulShutdown expects the ctx given to Serve to be cancelled already.
func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var shutdownErr error
	if s.httpServer != nil {
		shutdownErr = multierr.Append(shutdownErr, s.httpServer.Shutdown(ctx))
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		shutdownErr = multierr.Append(shutdownErr, s.metricsHttpServer.Shutdown(ctx))
		log.Warnln("metrics server shut down")
	}
	if shutdownErr != nil {
		log.Errorf(" >>> failed to gracefully shutdown http servers: %s", shutdownErr)
	}

	select {
	case <-s.syncDone:
		log.Debugln("contributions syncer done")
	case <-ctx.Done():
		log.Warnln("contributions syncer did not stop in time")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
