package streaks

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/mobilitystats/internal/mobility/posture"
	"github.com/2beens/mobilitystats/internal/mobility/workouts"
	"github.com/2beens/mobilitystats/internal/telemetry/tracing"
	"github.com/2beens/mobilitystats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=streaks_mocks_test.go -package=streaks_test

type workoutsSource interface {
	ListAll(ctx context.Context, params workouts.ListParams) ([]workouts.Workout, error)
}

type postureSource interface {
	ListAll(ctx context.Context, params posture.SessionParams) ([]posture.Session, error)
}

const maxHeatmapMonths = 24

type HeatmapResponse struct {
	Months []MonthHeatmap `json:"months"`
}

type Handler struct {
	workouts workoutsSource
	posture  postureSource
}

func NewHandler(workoutsRepo workoutsSource, postureRepo postureSource) *Handler {
	return &Handler{
		workouts: workoutsRepo,
		posture:  postureRepo,
	}
}

func (h *Handler) activityRecords(ctx context.Context) ([]ActivityRecord, error) {
	workoutList, err := h.workouts.ListAll(ctx, workouts.ListParams{})
	if err != nil {
		return nil, err
	}
	sessions, err := h.posture.ListAll(ctx, posture.SessionParams{})
	if err != nil {
		return nil, err
	}
	return RecordsFrom(workoutList, sessions), nil
}

func (h *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.streaks.get")
	defer span.End()

	records, err := h.activityRecords(ctx)
	if err != nil {
		log.Errorf("get streak, fetch activity records: %s", err)
		http.Error(w, "failed to get streak", http.StatusInternalServerError)
		return
	}

	stats := Compute(records, time.Now())

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal streak stats: %s", err)
		http.Error(w, "failed to get streak", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}

func (h *Handler) HandleHeatmap(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.streaks.heatmap")
	defer span.End()

	vars := mux.Vars(r)
	months, err := strconv.Atoi(vars["months"])
	if err != nil || months < 1 || months > maxHeatmapMonths {
		http.Error(w, "error, invalid <months> param", http.StatusBadRequest)
		return
	}

	records, err := h.activityRecords(ctx)
	if err != nil {
		log.Errorf("get heatmap, fetch activity records: %s", err)
		http.Error(w, "failed to get heatmap", http.StatusInternalServerError)
		return
	}

	heatmap := Heatmap(records, months, time.Now())

	heatmapJson, err := json.Marshal(HeatmapResponse{Months: heatmap})
	if err != nil {
		log.Errorf("failed to marshal heatmap: %s", err)
		http.Error(w, "failed to get heatmap", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, heatmapJson, http.StatusOK)
}
