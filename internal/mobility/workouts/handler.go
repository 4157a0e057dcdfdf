package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/mobilitystats/internal/mobility/calendar"
	"github.com/2beens/mobilitystats/internal/telemetry/metrics"
	"github.com/2beens/mobilitystats/internal/telemetry/tracing"
	"github.com/2beens/mobilitystats/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, workout Workout) (*Workout, error)
	Get(ctx context.Context, id int) (*Workout, error)
	List(ctx context.Context, params PageParams) (_ []Workout, total int, err error)
	ListAll(ctx context.Context, params ListParams) ([]Workout, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context, params ListParams) (int, error)
}

const (
	statsCacheSize          = 512 * 1024
	statsCacheExpireSeconds = 5 * 60
	weeklyVolumeCacheKey    = "stats::weekly-volume"
)

type DeleteWorkoutResponse struct {
	DeletedID int `json:"deletedId"`
}

type AddWorkoutResponse struct {
	Workout
	CountThisWeek int `json:"countThisWeek"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type Handler struct {
	repo       workoutsRepo
	analyzer   *Analyzer
	metrics    *metrics.Manager
	statsCache *freecache.Cache
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:       repo,
		analyzer:   NewAnalyzer(repo),
		metrics:    metricsManager,
		statsCache: freecache.NewCache(statsCacheSize),
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.workouts.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if workout.Kind == "" {
		http.Error(w, "error, workout kind empty", http.StatusBadRequest)
		return
	}

	if workout.PerformedAt.IsZero() {
		workout.PerformedAt = time.Now()
	}

	addedWorkout, err := handler.repo.Add(ctx, workout)
	if err != nil {
		log.Errorf("failed to add new workout [%s]: %s", workout.Kind, err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkouts.Inc()
	handler.statsCache.Del([]byte(weeklyVolumeCacheKey))

	weekStart := calendar.WeekStartOf(addedWorkout.PerformedAt)
	weekEnd := weekStart.AddDate(0, 0, 7)
	countThisWeek, err := handler.repo.Count(ctx, ListParams{
		From: &weekStart,
		To:   &weekEnd,
	})
	if err != nil {
		// just log the error, no need to return error to the client
		log.Errorf("failed to count workouts this week: %s", err)
		countThisWeek = 0
	}

	addWorkoutResponse := AddWorkoutResponse{
		Workout:       *addedWorkout,
		CountThisWeek: countThisWeek,
	}

	addedJson, err := json.Marshal(addWorkoutResponse)
	if err != nil {
		log.Errorf("failed to marshal new workout: %s", err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout added: %s", addedJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

// HandleImport accepts an array of raw workout rows, as exported by older app
// versions, normalizes them and stores the valid ones.
func (handler *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.workouts.import")
	defer span.End()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	var rawRows []json.RawMessage
	if err := json.Unmarshal(body, &rawRows); err != nil {
		log.Tracef("import workouts, unmarshal json params: %s", err)
		http.Error(w, "import failed, invalid payload", http.StatusBadRequest)
		return
	}

	var imported, skipped int
	for _, rawRow := range rawRows {
		workout, ok := NormalizeWorkout(rawRow)
		if !ok {
			skipped++
			continue
		}
		if _, err := handler.repo.Add(ctx, workout); err != nil {
			log.Errorf("import workout [%s]: %s", workout.Kind, err)
			skipped++
			continue
		}
		imported++
	}

	if imported > 0 {
		handler.metrics.CounterWorkouts.Add(float64(imported))
		handler.statsCache.Del([]byte(weeklyVolumeCacheKey))
	}

	log.Debugf("workouts import done: %d imported, %d skipped", imported, skipped)

	respJson, err := json.Marshal(ImportResponse{Imported: imported, Skipped: skipped})
	if err != nil {
		log.Errorf("failed to marshal import response: %s", err)
		http.Error(w, "failed to marshal import response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.workouts.get")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.Get(ctx, id)
	if err != nil {
		log.Errorf("failed to get workout %d: %s", id, err)
		http.Error(w, "workout not found", http.StatusBadRequest)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal workout: %s", err)
		http.Error(w, "failed to marshal workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.workouts.delete")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			log.Debugf("workout %d not found", id)
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete workout %d: %s", id, err)
		http.Error(w, "workout not deleted", http.StatusInternalServerError)
		return
	}

	handler.statsCache.Del([]byte(weeklyVolumeCacheKey))

	deleteRespJson, err := json.Marshal(DeleteWorkoutResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, deleteRespJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.workouts.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle list workouts, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle list workouts, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	listParams := PageParams{
		ListParams: ListParams{
			Kind: r.URL.Query().Get("kind"),
		},
		Page: page,
		Size: size,
	}

	workouts, total, err := handler.repo.List(ctx, listParams)
	if err != nil {
		log.Errorf("list workouts error: %s", err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(ListResponse{
		Workouts: workouts,
		Total:    total,
	})
	if err != nil {
		log.Errorf("failed to marshal workouts list response: %s", err)
		http.Error(w, "failed to marshal workouts list response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleWeeklyVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.workouts.weeklyVolume")
	defer span.End()

	if cached, err := handler.statsCache.Get([]byte(weeklyVolumeCacheKey)); err == nil {
		log.Tracef("weekly volume served from cache")
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}

	points, err := handler.analyzer.WeeklyVolume(ctx)
	if err != nil {
		log.Errorf("weekly volume error: %s", err)
		http.Error(w, "failed to get weekly volume", http.StatusInternalServerError)
		return
	}

	pointsJson, err := json.Marshal(points)
	if err != nil {
		log.Errorf("failed to marshal weekly volume: %s", err)
		http.Error(w, "failed to marshal weekly volume", http.StatusInternalServerError)
		return
	}

	if err := handler.statsCache.Set([]byte(weeklyVolumeCacheKey), pointsJson, statsCacheExpireSeconds); err != nil {
		log.Errorf("failed to cache weekly volume: %s", err)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, pointsJson, http.StatusOK)
}

func (handler *Handler) HandleWeightTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.workouts.weightTrend")
	defer span.End()

	vars := mux.Vars(r)
	exerciseID := vars["exid"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	points, err := handler.analyzer.ExerciseWeightTrend(ctx, exerciseID)
	if err != nil {
		log.Errorf("weight trend [%s] error: %s", exerciseID, err)
		http.Error(w, "failed to get weight trend", http.StatusInternalServerError)
		return
	}

	pointsJson, err := json.Marshal(points)
	if err != nil {
		log.Errorf("failed to marshal weight trend: %s", err)
		http.Error(w, "failed to marshal weight trend", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, pointsJson, http.StatusOK)
}

func (handler *Handler) HandleSideVolumeTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.workouts.sideVolumeTrend")
	defer span.End()

	vars := mux.Vars(r)
	exerciseID := vars["exid"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	points, err := handler.analyzer.SideVolumeTrend(ctx, exerciseID)
	if err != nil {
		log.Errorf("side volume trend [%s] error: %s", exerciseID, err)
		http.Error(w, "failed to get side volume trend", http.StatusInternalServerError)
		return
	}

	pointsJson, err := json.Marshal(points)
	if err != nil {
		log.Errorf("failed to marshal side volume trend: %s", err)
		http.Error(w, "failed to marshal side volume trend", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, pointsJson, http.StatusOK)
}

func (handler *Handler) HandleAsymmetry(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.workouts.asymmetry")
	defer span.End()

	summary, err := handler.analyzer.Asymmetry(ctx)
	if err != nil {
		log.Errorf("asymmetry error: %s", err)
		http.Error(w, "failed to get asymmetry", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal asymmetry: %s", err)
		http.Error(w, "failed to marshal asymmetry", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryJson, http.StatusOK)
}
