//go:build integration_test || all_tests

package test

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"testing"
	"time"

	"github.com/2beens/smarttrack/internal"
	"github.com/2beens/smarttrack/internal/config"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
)

const (
	serverPort = 9000
	serverHost = "127.0.0.1"
	testDBName = "smarttrack"

	notesRateLimitPerMin = 40
	notesRateLimitKey    = "notes-ingest"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

// IntegrationTestSuite runs the whole service against dockerized
// postgres and redis.
type IntegrationTestSuite struct {
	suite.Suite

	DB          *sql.DB
	redisClient *redis.Client
	dockerPool *dockertest.Pool
	server      *internal.Server
	httpClient  *http.Client
	cancel      context.CancelFunc
	teardown    []func()
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupSuite() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	fmt.Println("setting up test suite...")

	s.teardown = make([]func(), 0)
	s.httpClient = &http.Client{Timeout: 10 * time.Second}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	var err error
	s.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}
	fmt.Println("dockertest pool created")

	// uses pool to try to connect to Docker
	if err = s.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}
	fmt.Println("dockertest pool ping successful")

	redisPort, err := s.redisSetup()
	if err != nil {
		s.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}
	s.redisClient = redis.NewClient(&redis.Options{Addr: "localhost:" + redisPort})
	fmt.Println("redis setup successful")

	pgPort, err := s.postgresSetup(ctx)
	if err != nil {
		s.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}
	fmt.Println("postgres setup successful")

	cfg := getTestConfig(redisPort, pgPort)
	s.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             "test-version-info",
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		s.cleanup()
		log.Fatalf("new server: %s", err)
	}
	fmt.Println("server created")

	s.server.Serve(ctx, cfg.Host, cfg.Port)
	if err := s.dockerPool.Retry(func() error {
		resp, err := s.httpClient.Get(serverEndpoint + "/version")
		if err != nil {
			return err
		}
		return resp.Body.Close()
	}); err != nil {
		s.cleanup()
		log.Fatalf("server not reachable: %s", err)
	}
	fmt.Println("server started")
}

// TearDownTest gives every test a fresh note ingest rate limit.
func (s *IntegrationTestSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redis_rate.NewLimiter(s.redisClient).Reset(ctx, notesRateLimitKey); err != nil {
		fmt.Printf(" --> reset rate limit: %s\n", err)
	}
}

func (s *IntegrationTestSuite) TearDownSuite() {
	s.cleanup()
}

func (s *IntegrationTestSuite) cleanup() {
	fmt.Println(" --> cleaning up test suite...")
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			fmt.Printf(" --> test suite db close error: %s\n", err)
		}
	}
	fmt.Println(" --> test suite db closed")
	if s.redisClient != nil {
		_ = s.redisClient.Close()
	}
	if s.cancel != nil {
		s.cancel()
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
	fmt.Println(" --> test suite server shut down")
	for _, teardown := range s.teardown {
		teardown()
	}
	fmt.Println(" --> test suite cleanup done")
}

func getTestConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Environment:                 "test",
		Host:                        serverHost,
		Port:                        serverPort,
		PrometheusMetricsHost:       serverHost,
		PrometheusMetricsPort:       "0",
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		PostgresPort:                postgresPort,
		PostgresHost:                "localhost",
		PostgresDBName:              testDBName,
		ContributionStore:           config.ContributionStoreRedis,
		TimeZone:                    "UTC",
		NotesRateLimitAllowedPerMin: notesRateLimitPerMin,
	}
}

func (s *IntegrationTestSuite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "smarttrack-redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		if err := redisResource.Close(); err != nil {
			fmt.Printf("redis teardown: %s\n", err)
		}
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *IntegrationTestSuite) postgresSetup(ctx context.Context) (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + testDBName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		if err := pgResource.Close(); err != nil {
			fmt.Printf("postgres teardown: %s\n", err)
		}
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf(
		"postgres://postgres@localhost:%s/%s?sslmode=disable",
		pgPort, testDBName,
	)
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return "", fmt.Errorf("parse db config: %w", err)
	}

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return "", fmt.Errorf("create connection pool: %w", err)
	}
	defer db.Close()

	if err := s.dockerPool.Retry(func() error {
		return db.Ping(ctx)
	}); err != nil {
		return "", fmt.Errorf("connect to db: %s", err)
	}

	// plain database/sql handle for assertions on stored rows
	s.DB, err = sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open sql db: %w", err)
	}

	return pgPort, nil
}
