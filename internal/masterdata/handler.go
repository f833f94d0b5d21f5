package masterdata

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fitnesslog/internal/telemetry/tracing"
	"github.com/2beens/fitnesslog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=masterdata_test

type masterdataRepo interface {
	ListExercises(ctx context.Context) ([]Exercise, error)
	CreateExercise(ctx context.Context, input ExerciseInput) (*Exercise, error)
	UpdateExercise(ctx context.Context, id int, input ExerciseInput) (*Exercise, error)
	DeleteExercise(ctx context.Context, id int) error
	ListUnits(ctx context.Context) ([]Unit, error)
	CreateUnit(ctx context.Context, input UnitInput) (*Unit, error)
}

type Handler struct {
	repo masterdataRepo
}

func NewHandler(repo masterdataRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

// SetupRoutes mounts reference data under /api/masterdata. Mutations go through writeLimit.
func (h *Handler) SetupRoutes(mainRouter *mux.Router, writeLimit func(http.Handler) http.Handler) {
	r := mainRouter.PathPrefix("/api/masterdata").Subrouter()
	r.HandleFunc("/exercises", h.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	r.Handle("/exercise/create", writeLimit(http.HandlerFunc(h.HandleCreateExercise))).Methods("POST", "OPTIONS").Name("create-exercise")
	r.Handle("/exercise/{id:[0-9]+}", writeLimit(http.HandlerFunc(h.HandleUpdateExercise))).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.Handle("/exercise/{id:[0-9]+}", writeLimit(http.HandlerFunc(h.HandleDeleteExercise))).Methods("DELETE", "OPTIONS").Name("delete-exercise")
	r.HandleFunc("/units", h.HandleListUnits).Methods("GET", "OPTIONS").Name("list-units")
	r.Handle("/unit/create", writeLimit(http.HandlerFunc(h.HandleCreateUnit))).Methods("POST", "OPTIONS").Name("create-unit")
}

func (h *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.masterdata.exercises.list")
	defer span.End()

	exercises, err := h.repo.ListExercises(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "list exercises failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (h *Handler) HandleCreateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.masterdata.exercises.create")
	defer span.End()

	var input ExerciseInput
	if err := pkg.DecodeJSONBody(r, &input); err != nil {
		log.Errorf("create exercise, decode body: %s", err)
		http.Error(w, "invalid exercise body", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	exercise, err := h.repo.CreateExercise(ctx, input)
	if err != nil {
		h.writeError(w, "create exercise", err)
		return
	}

	log.Debugf("new exercise added: %d %s", exercise.ID, exercise.Name)
	pkg.WriteJSON(w, exercise, http.StatusCreated)
}

func (h *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.masterdata.exercises.update")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	var input ExerciseInput
	if err := pkg.DecodeJSONBody(r, &input); err != nil {
		log.Errorf("update exercise, decode body: %s", err)
		http.Error(w, "invalid exercise body", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	exercise, err := h.repo.UpdateExercise(ctx, id, input)
	if err != nil {
		h.writeError(w, "update exercise", err)
		return
	}
	pkg.WriteJSON(w, exercise, http.StatusOK)
}

func (h *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.masterdata.exercises.delete")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteExercise(ctx, id); err != nil {
		h.writeError(w, "delete exercise", err)
		return
	}

	log.Debugf("exercise %d deleted", id)
	pkg.WriteJSON(w, pkg.OkResponse{Ok: true}, http.StatusOK)
}

func (h *Handler) HandleListUnits(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.masterdata.units.list")
	defer span.End()

	units, err := h.repo.ListUnits(ctx)
	if err != nil {
		log.Errorf("list units: %s", err)
		http.Error(w, "list units failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, units, http.StatusOK)
}

func (h *Handler) HandleCreateUnit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.masterdata.units.create")
	defer span.End()

	var input UnitInput
	if err := pkg.DecodeJSONBody(r, &input); err != nil {
		log.Errorf("create unit, decode body: %s", err)
		http.Error(w, "invalid unit body", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	unit, err := h.repo.CreateUnit(ctx, input)
	if err != nil {
		h.writeError(w, "create unit", err)
		return
	}
	pkg.WriteJSON(w, unit, http.StatusCreated)
}

func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrExerciseNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrExerciseExists),
		errors.Is(err, ErrExerciseInUse),
		errors.Is(err, ErrUnitExists):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, op+" failed", http.StatusInternalServerError)
	}
}
