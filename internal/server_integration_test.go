//go:build integration_test || all_tests

package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/2beens/fitnesslog/internal/config"
	"github.com/2beens/fitnesslog/internal/fitness"
	"github.com/2beens/fitnesslog/internal/masterdata"
	"github.com/2beens/fitnesslog/internal/middleware"
	"github.com/2beens/fitnesslog/internal/misc"
	"github.com/2beens/fitnesslog/internal/telemetry/metrics"
	"github.com/2beens/fitnesslog/internal/testutil"
	"github.com/2beens/fitnesslog/internal/timezone"
)

const (
	testServerHost  = "127.0.0.1"
	testServerPort  = 9123
	testMetricsPort = 9124
	testTimezone    = "Europe/Berlin"
)

var testServerEndpoint = fmt.Sprintf("http://%s:%d", testServerHost, testServerPort)

type ServerIntegrationTestSuite struct {
	suite.Suite

	pg         *testutil.Postgres
	redisPort  string
	server     *Server
	httpClient *http.Client
}

func TestServerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ServerIntegrationTestSuite))
}

func (s *ServerIntegrationTestSuite) SetupSuite() {
	t := s.T()
	ctx := context.Background()

	s.pg = testutil.StartPostgres(t)
	s.redisPort = startRedis(t)
	s.httpClient = &http.Client{Timeout: 10 * time.Second}

	cfg := &config.Config{
		Environment:             "development",
		Host:                    testServerHost,
		Port:                    testServerPort,
		MetricsPort:             testMetricsPort,
		PostgresHost:            "localhost",
		PostgresPort:            s.pg.Port,
		PostgresDBName:          "fitnesslog_test",
		PostgresUser:            "postgres",
		RedisHost:               "localhost",
		RedisPort:               s.redisPort,
		WriteRateLimitPerMinute: 1000,
		AllowedOrigins:          []string{"*"},
	}

	var err error
	s.server, err = NewServer(ctx, NewServerParams{
		Config:       cfg,
		VersionInfo:  "test-version-info",
		InitDBSchema: true,
	})
	require.NoError(t, err)
	s.server.Serve(cfg.Host, cfg.Port)

	require.Eventually(t, func() bool {
		resp, err := s.httpClient.Get(testServerEndpoint + "/")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 100*time.Millisecond, "server did not start")
}

func (s *ServerIntegrationTestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.GracefulShutdown()
	}
}

func (s *ServerIntegrationTestSuite) SetupTest() {
	s.pg.Truncate(s.T())
}

func startRedis(t *testing.T) string {
	t.Helper()
	dockerPool, err := dockertest.NewPool("")
	require.NoError(t, err)

	redisResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	require.NoError(t, err, "run redis")
	t.Cleanup(func() {
		if err := redisResource.Close(); err != nil {
			t.Logf("redis teardown: %s", err)
		}
	})

	redisPort := redisResource.GetPort("6379/tcp")
	require.NoError(t, dockerPool.Retry(func() error {
		rdb := redis.NewClient(&redis.Options{Addr: net.JoinHostPort("localhost", redisPort)})
		defer rdb.Close()
		return rdb.Ping(context.Background()).Err()
	}), "connect to redis")

	return redisPort
}

func (s *ServerIntegrationTestSuite) do(method, path string, body any) (int, []byte) {
	t := s.T()
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, testServerEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set(timezone.Header, testTimezone)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *ServerIntegrationTestSuite) TestHealth() {
	t := s.T()
	status, body := s.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, status, string(body))

	var health misc.HealthResponse
	require.NoError(t, json.Unmarshal(body, &health))
	assert.True(t, health.Ok)
	assert.Equal(t, "ok", health.Postgres)
	assert.Equal(t, "ok", health.Redis)
}

func (s *ServerIntegrationTestSuite) TestSetLifecycle() {
	t := s.T()
	exerciseID := s.pg.SeedExercise(t, "Bench Press", nil)
	unitID := s.pg.SeedUnit(t, "kg")

	status, body := s.do(http.MethodGet, "/api/fitness/fitness_day/today", nil)
	require.Equal(t, http.StatusOK, status)
	var placeholder fitness.DayDetailView
	require.NoError(t, json.Unmarshal(body, &placeholder))
	assert.Nil(t, placeholder.ID)
	assert.Equal(t, testTimezone, placeholder.Timezone)

	reps := 8
	status, body = s.do(http.MethodPost, "/api/fitness/fitness_set/create", fitness.CreateSetInput{
		ExerciseID: exerciseID,
		Weight:     80,
		Reps:       &reps,
		UnitID:     unitID,
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	var created fitness.Set
	require.NoError(t, json.Unmarshal(body, &created))
	assert.NotZero(t, created.DayID)
	assert.Equal(t, fitness.SetTypeWorking, created.SetType)

	status, body = s.do(http.MethodGet, "/api/fitness/fitness_day/today", nil)
	require.Equal(t, http.StatusOK, status)
	var today fitness.DayDetailView
	require.NoError(t, json.Unmarshal(body, &today))
	require.NotNil(t, today.ID)
	assert.Equal(t, created.DayID, *today.ID)
	require.Len(t, today.Exercises, 1)
	assert.Equal(t, "Bench Press", today.Exercises[0].Exercise.Name)
	require.Len(t, today.Exercises[0].Sets, 1)
	assert.Equal(t, "kg", today.Exercises[0].Sets[0].Unit.Name)

	status, body = s.do(http.MethodGet, "/api/fitness/fitness_logs", nil)
	require.Equal(t, http.StatusOK, status)
	var logs []fitness.LogGroup
	require.NoError(t, json.Unmarshal(body, &logs))
	require.Len(t, logs, 1)
	require.Len(t, logs[0].Sets, 1)
	assert.Equal(t, "Bench Press", logs[0].Sets[0].Exercise)

	status, body = s.do(http.MethodDelete, fmt.Sprintf("/api/fitness/fitness_set/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var deleted fitness.DeleteResult
	require.NoError(t, json.Unmarshal(body, &deleted))
	assert.True(t, deleted.Deleted)
	assert.True(t, deleted.DayDeleted)

	status, _ = s.do(http.MethodGet, fmt.Sprintf("/api/fitness/fitness_day/%d", created.DayID), nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/fitness/fitness_set/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *ServerIntegrationTestSuite) TestStartAndFinishToday() {
	t := s.T()

	status, body := s.do(http.MethodPost, "/api/fitness/fitness_day/today/start", map[string]any{
		"primary_muscles": []masterdata.MuscleGroup{masterdata.MuscleGroupChest, masterdata.MuscleGroupBack},
	})
	require.Equal(t, http.StatusOK, status, string(body))
	var started fitness.DayDetailView
	require.NoError(t, json.Unmarshal(body, &started))
	require.NotNil(t, started.ID)
	assert.Len(t, started.PrimaryMuscles, 2)
	assert.Nil(t, started.EndTime)

	status, body = s.do(http.MethodPut, "/api/fitness/fitness_day/today/end", nil)
	require.Equal(t, http.StatusOK, status, string(body))

	status, body = s.do(http.MethodGet, fmt.Sprintf("/api/fitness/fitness_day/%d", *started.ID), nil)
	require.Equal(t, http.StatusOK, status)
	var finished fitness.DayDetailView
	require.NoError(t, json.Unmarshal(body, &finished))
	assert.NotNil(t, finished.EndTime)

	now := time.Now()
	status, body = s.do(http.MethodGet, fmt.Sprintf("/api/fitness/fitness_day?year=%d&month=%d", now.Year(), int(now.Month())), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "training_days")
}

func (s *ServerIntegrationTestSuite) TestRateLimitWithRedis() {
	t := s.T()
	rdb := redis.NewClient(&redis.Options{Addr: net.JoinHostPort("localhost", s.redisPort)})
	defer rdb.Close()

	metricsManager := metrics.NewTestManager()
	routerName := fmt.Sprintf("rate-limit-test-%d", time.Now().UnixNano())
	handler := middleware.RateLimit(redis_rate.NewLimiter(rdb), routerName, 2, metricsManager)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodPost, "/", nil)
		require.NoError(t, err)
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
