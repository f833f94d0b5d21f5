package fitness

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitnesslog/internal/masterdata"
	"github.com/2beens/fitnesslog/internal/middleware"
	"github.com/2beens/fitnesslog/internal/telemetry/tracing"
	"github.com/2beens/fitnesslog/internal/timezone"
	"github.com/2beens/fitnesslog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=fitness_test

type dayService interface {
	LocalToday(tz string) (time.Time, error)
	NowUTC() time.Time
	GetDetail(ctx context.Context, id int) (*DayDetail, error)
	GetDetailByDate(ctx context.Context, date time.Time) (*DayDetail, error)
	StartToday(ctx context.Context, tz string, muscles *[]masterdata.MuscleGroup) (*DayDetail, error)
	FinishToday(ctx context.Context, tz string) (*Day, error)
	FinishByID(ctx context.Context, id int) (*Day, error)
	TrainingCalendar(ctx context.Context, year, month int) (map[int]int, error)
}

type setService interface {
	Create(ctx context.Context, input CreateSetInput, tz string) (*Set, error)
	Update(ctx context.Context, id int, input UpdateSetInput) (*Set, error)
	Delete(ctx context.Context, id int) (DeleteResult, error)
}

type logService interface {
	ListLogs(ctx context.Context, params LogParams) ([]LogGroup, error)
}

type referenceData interface {
	ListExercises(ctx context.Context) ([]masterdata.Exercise, error)
	ListUnits(ctx context.Context) ([]masterdata.Unit, error)
}

type Handler struct {
	days       dayService
	sets       setService
	logs       logService
	masterdata referenceData
}

func NewHandler(days dayService, sets setService, logs logService, masterdata referenceData) *Handler {
	return &Handler{
		days:       days,
		sets:       sets,
		logs:       logs,
		masterdata: masterdata,
	}
}

// SetupRoutes mounts the fitness API under /api/fitness. Mutations go through writeLimit.
func (h *Handler) SetupRoutes(mainRouter *mux.Router, writeLimit func(http.Handler) http.Handler) {
	r := mainRouter.PathPrefix("/api/fitness").Subrouter()
	tz := middleware.RequireTimezone()

	r.Handle("/init-data", tz(http.HandlerFunc(h.HandleInitData))).Methods("GET", "OPTIONS").Name("init-data")

	// today routes go first, {id} would match them otherwise
	r.Handle("/fitness_day/today", tz(http.HandlerFunc(h.HandleGetToday))).Methods("GET", "OPTIONS").Name("get-today")
	r.Handle("/fitness_day/today/start", tz(writeLimit(http.HandlerFunc(h.HandleStartToday)))).Methods("POST", "OPTIONS").Name("start-today")
	r.Handle("/fitness_day/today/end", tz(writeLimit(http.HandlerFunc(h.HandleFinishToday)))).Methods("PUT", "OPTIONS").Name("finish-today")
	r.Handle("/fitness_day", tz(http.HandlerFunc(h.HandleGetDays))).Methods("GET", "OPTIONS").Name("get-days")
	r.HandleFunc("/fitness_day/{id:[0-9]+}", h.HandleGetDay).Methods("GET", "OPTIONS").Name("get-day")
	r.Handle("/fitness_day/{id:[0-9]+}/end", writeLimit(http.HandlerFunc(h.HandleFinishDay))).Methods("PUT", "OPTIONS").Name("finish-day")

	r.Handle("/fitness_set/create", tz(writeLimit(http.HandlerFunc(h.HandleCreateSet)))).Methods("POST", "OPTIONS").Name("create-set")
	r.Handle("/fitness_set/{id:[0-9]+}", writeLimit(http.HandlerFunc(h.HandleUpdateSet))).Methods("PUT", "OPTIONS").Name("update-set")
	r.Handle("/fitness_set/{id:[0-9]+}", writeLimit(http.HandlerFunc(h.HandleDeleteSet))).Methods("DELETE", "OPTIONS").Name("delete-set")

	r.HandleFunc("/fitness_logs", h.HandleListLogs).Methods("GET", "OPTIONS").Name("list-logs")
}

type InitData struct {
	Today        string                   `json:"today"`
	Timezone     string                   `json:"timezone"`
	Exercises    []InitExercise           `json:"exercises"`
	Units        []NamedRef               `json:"units"`
	SetTypes     []SetTypeOption          `json:"set_types"`
	MuscleGroups []masterdata.MuscleGroup `json:"muscle_groups"`
}

type InitExercise struct {
	ID           int                     `json:"id"`
	Name         string                  `json:"name"`
	TargetMuscle *masterdata.MuscleGroup `json:"target_muscle"`
}

type TrainingDaysResponse struct {
	TrainingDays map[int]int `json:"training_days"`
}

type StartDayRequest struct {
	PrimaryMuscles *[]masterdata.MuscleGroup `json:"primary_muscles"`
}

func (h *Handler) HandleInitData(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.init_data")
	defer span.End()

	tz, today, ok := h.requestToday(w, r)
	if !ok {
		return
	}

	exercises, err := h.masterdata.ListExercises(ctx)
	if err != nil {
		log.Errorf("init data, list exercises: %s", err)
		http.Error(w, "get init data failed", http.StatusInternalServerError)
		return
	}
	units, err := h.masterdata.ListUnits(ctx)
	if err != nil {
		log.Errorf("init data, list units: %s", err)
		http.Error(w, "get init data failed", http.StatusInternalServerError)
		return
	}

	initData := InitData{
		Today:        today.Format("2006/01/02"),
		Timezone:     tz,
		Exercises:    make([]InitExercise, 0, len(exercises)),
		Units:        make([]NamedRef, 0, len(units)),
		SetTypes:     SetTypeOptions(),
		MuscleGroups: masterdata.MuscleGroups,
	}
	for _, ex := range exercises {
		initData.Exercises = append(initData.Exercises, InitExercise{ID: ex.ID, Name: ex.Name, TargetMuscle: ex.TargetMuscle})
	}
	for _, u := range units {
		initData.Units = append(initData.Units, NamedRef{ID: u.ID, Name: u.Name})
	}

	pkg.WriteJSON(w, initData, http.StatusOK)
}

// HandleGetDays serves either the month calendar (?year=&month=) or,
// with ?date=, the detail of the day on that date.
func (h *Handler) HandleGetDays(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("date") {
		h.handleGetDayByDate(w, r)
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.days.month")
	defer span.End()

	_, today, ok := h.requestToday(w, r)
	if !ok {
		return
	}

	year, err := intQueryParam(r, "year", today.Year())
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}
	month, err := intQueryParam(r, "month", int(today.Month()))
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	calendar, err := h.days.TrainingCalendar(ctx, year, month)
	if errors.Is(err, ErrInvalidMonth) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("list fitness days by month: %s", err)
		http.Error(w, "list fitness days failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, TrainingDaysResponse{TrainingDays: calendar}, http.StatusOK)
}

func (h *Handler) handleGetDayByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.days.by_date")
	defer span.End()

	tz, err := timezone.FromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	date, err := timezone.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeDetailOrPlaceholder(ctx, w, tz, date)
}

func (h *Handler) HandleGetToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.days.today")
	defer span.End()

	tz, today, ok := h.requestToday(w, r)
	if !ok {
		return
	}
	h.writeDetailOrPlaceholder(ctx, w, tz, today)
}

func (h *Handler) writeDetailOrPlaceholder(ctx context.Context, w http.ResponseWriter, tz string, date time.Time) {
	detail, err := h.days.GetDetailByDate(ctx, date)
	if errors.Is(err, ErrDayNotFound) {
		pkg.WriteJSON(w, PlaceholderDetail(tz, date, h.days.NowUTC()), http.StatusOK)
		return
	}
	if err != nil {
		log.Errorf("get fitness day for %s: %s", dateString(date), err)
		http.Error(w, "get fitness day failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, detail.View(), http.StatusOK)
}

func (h *Handler) HandleStartToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.days.start_today")
	defer span.End()

	tz, err := timezone.FromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req StartDayRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Errorf("start today, decode body: %s", err)
		http.Error(w, "invalid start day body", http.StatusBadRequest)
		return
	}

	detail, err := h.days.StartToday(ctx, tz, req.PrimaryMuscles)
	if err != nil {
		h.writeError(w, "start today", err)
		return
	}
	pkg.WriteJSON(w, detail.View(), http.StatusOK)
}

func (h *Handler) HandleFinishToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.days.finish_today")
	defer span.End()

	tz, err := timezone.FromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.days.FinishToday(ctx, tz); err != nil {
		if errors.Is(err, ErrDayNotFound) {
			http.Error(w, "today's fitness day not found", http.StatusNotFound)
			return
		}
		h.writeError(w, "finish today", err)
		return
	}
	pkg.WriteJSON(w, pkg.OkResponse{Ok: true}, http.StatusOK)
}

func (h *Handler) HandleFinishDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.days.finish")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "invalid fitness day id", http.StatusBadRequest)
		return
	}

	if _, err := h.days.FinishByID(ctx, id); err != nil {
		h.writeError(w, "finish fitness day", err)
		return
	}
	pkg.WriteJSON(w, pkg.OkResponse{Ok: true}, http.StatusOK)
}

func (h *Handler) HandleGetDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.days.get")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "invalid fitness day id", http.StatusBadRequest)
		return
	}

	detail, err := h.days.GetDetail(ctx, id)
	if err != nil {
		h.writeError(w, "get fitness day", err)
		return
	}
	pkg.WriteJSON(w, detail.View(), http.StatusOK)
}

func (h *Handler) HandleCreateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.sets.create")
	defer span.End()

	tz, err := timezone.FromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var input CreateSetInput
	if err := pkg.DecodeJSONBody(r, &input); err != nil {
		log.Errorf("create set, decode body: %s", err)
		http.Error(w, "invalid fitness set body", http.StatusBadRequest)
		return
	}

	set, err := h.sets.Create(ctx, input, tz)
	if err != nil {
		h.writeError(w, "create fitness set", err)
		return
	}

	log.Debugf("fitness set %d added to day %d", set.ID, set.DayID)
	pkg.WriteJSON(w, set, http.StatusCreated)
}

func (h *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.sets.update")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "invalid fitness set id", http.StatusBadRequest)
		return
	}

	var input UpdateSetInput
	if err := pkg.DecodeJSONBody(r, &input); err != nil {
		log.Errorf("update set, decode body: %s", err)
		http.Error(w, "invalid fitness set body", http.StatusBadRequest)
		return
	}

	set, err := h.sets.Update(ctx, id, input)
	if err != nil {
		h.writeError(w, "update fitness set", err)
		return
	}
	pkg.WriteJSON(w, set, http.StatusOK)
}

func (h *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.sets.delete")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "invalid fitness set id", http.StatusBadRequest)
		return
	}

	result, err := h.sets.Delete(ctx, id)
	if err != nil {
		h.writeError(w, "delete fitness set", err)
		return
	}
	if !result.Deleted {
		http.Error(w, ErrSetNotFound.Error(), http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) HandleListLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.logs.list")
	defer span.End()

	params := LogParams{
		ExerciseName: r.URL.Query().Get("exercise_name"),
	}
	for name, target := range map[string]**time.Time{
		"from_date": &params.From,
		"to_date":   &params.To,
	} {
		raw := strings.TrimSpace(r.URL.Query().Get(name))
		if raw == "" {
			continue
		}
		date, err := timezone.ParseDate(raw)
		if err != nil {
			http.Error(w, name+": "+err.Error(), http.StatusBadRequest)
			return
		}
		*target = &date
	}

	groups, err := h.logs.ListLogs(ctx, params)
	if err != nil {
		h.writeError(w, "list fitness logs", err)
		return
	}
	pkg.WriteJSON(w, groups, http.StatusOK)
}

// requestToday resolves the request timezone and today's date in it,
// writing a 400 when the timezone is unusable.
func (h *Handler) requestToday(w http.ResponseWriter, r *http.Request) (string, time.Time, bool) {
	tz, err := timezone.FromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", time.Time{}, false
	}
	today, err := h.days.LocalToday(tz)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", time.Time{}, false
	}
	return tz, today, true
}

func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, timezone.ErrInvalidTimezone),
		errors.Is(err, timezone.ErrInvalidDateFormat),
		errors.Is(err, ErrInvalidSetInput),
		errors.Is(err, ErrInvalidMonth):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrDayNotFound),
		errors.Is(err, ErrSetNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrReferenceViolation):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, op+" failed", http.StatusInternalServerError)
	}
}

func intQueryParam(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
