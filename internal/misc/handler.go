package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fitnesslog/internal/telemetry/tracing"
	"github.com/2beens/fitnesslog/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const healthCheckTimeout = 2 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	versionInfo string
	db          dbPinger
	redisClient *redis.Client
}

func NewHandler(versionInfo string, db dbPinger, redisClient *redis.Client) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		db:          db,
		redisClient: redisClient,
	}
}

type HealthResponse struct {
	Ok       bool   `json:"ok"`
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET", "OPTIONS").Name("version")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET", "OPTIONS").Name("health")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

// handleHealth reports 503 when postgres or redis does not answer a ping.
func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Ok: true, Postgres: "ok", Redis: "ok"}
	if err := handler.db.Ping(ctx); err != nil {
		log.Errorf("health: postgres ping: %s", err)
		resp.Ok = false
		resp.Postgres = err.Error()
	}
	if err := handler.redisClient.Ping(ctx).Err(); err != nil {
		log.Errorf("health: redis ping: %s", err)
		resp.Ok = false
		resp.Redis = err.Error()
	}

	status := http.StatusOK
	if !resp.Ok {
		status = http.StatusServiceUnavailable
		span.SetStatus(codes.Error, "unhealthy")
	}
	pkg.WriteJSON(w, resp, status)
}
