package goals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/mobilitystats/internal/telemetry/tracing"
	"github.com/2beens/mobilitystats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=goals_mocks_test.go -package=goals_test

type goalsRepo interface {
	Add(ctx context.Context, goal Goal) (*Goal, error)
	Get(ctx context.Context, id int) (*Goal, error)
	UpdateStatus(ctx context.Context, id int, status Status) error
	Delete(ctx context.Context, id int) error
	ListAll(ctx context.Context, params GoalParams) ([]Goal, error)
	CountByStatus(ctx context.Context, status Status) (int, error)
	AddProgress(ctx context.Context, entry ProgressEntry) (*ProgressEntry, error)
	ProgressHistory(ctx context.Context, goalID int) ([]ProgressEntry, error)
}

type DeleteGoalResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

type UpdateStatusResponse struct {
	UpdatedID int    `json:"updatedId"`
	Status    Status `json:"status"`
}

type ListResponse struct {
	Goals []Goal `json:"goals"`
	Total int    `json:"total"`
}

type GoalWithProgress struct {
	Goal     Goal     `json:"goal"`
	Progress Progress `json:"progress"`
}

type Handler struct {
	repo       goalsRepo
	thresholds ProgressThresholds
}

func NewHandler(repo goalsRepo) *Handler {
	return &Handler{
		repo:       repo,
		thresholds: DefaultProgressThresholds(),
	}
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.goals.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var goal Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		log.Tracef("new goal, unmarshal json params: %s", err)
		http.Error(w, "add goal failed", http.StatusBadRequest)
		return
	}

	if !goal.Type.IsValid() {
		http.Error(w, "error, invalid goal type", http.StatusBadRequest)
		return
	}
	if goal.Title == "" {
		http.Error(w, "error, goal title empty", http.StatusBadRequest)
		return
	}

	if goal.Status == "" {
		goal.Status = StatusActive
	}
	if !goal.Status.IsValid() {
		http.Error(w, "error, invalid goal status", http.StatusBadRequest)
		return
	}
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = time.Now()
	}

	addedGoal, err := h.repo.Add(ctx, goal)
	if err != nil {
		log.Errorf("failed to add new goal [%s]: %s", goal.Title, err)
		http.Error(w, "error, failed to add new goal", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(addedGoal)
	if err != nil {
		log.Errorf("failed to marshal new goal: %s", err)
		http.Error(w, "error, failed to add new goal", http.StatusInternalServerError)
		return
	}

	log.Debugf("new goal added: %s", addedJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.goals.get")
	defer span.End()

	id, ok := goalID(w, r)
	if !ok {
		return
	}

	goal, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get goal %d: %s", id, err)
		http.Error(w, "failed to get goal", http.StatusInternalServerError)
		return
	}

	goalJson, err := json.Marshal(goal)
	if err != nil {
		log.Errorf("failed to marshal goal: %s", err)
		http.Error(w, "failed to marshal goal", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalJson, http.StatusOK)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.goals.list")
	defer span.End()

	params := GoalParams{}
	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		goalType := Type(typeStr)
		if !goalType.IsValid() {
			http.Error(w, "error, invalid goal type", http.StatusBadRequest)
			return
		}
		params.Type = &goalType
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := Status(statusStr)
		if !status.IsValid() {
			http.Error(w, "error, invalid goal status", http.StatusBadRequest)
			return
		}
		params.Status = &status
	}

	goals, err := h.repo.ListAll(ctx, params)
	if err != nil {
		log.Errorf("list goals error: %s", err)
		http.Error(w, "failed to get goals", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(ListResponse{
		Goals: goals,
		Total: len(goals),
	})
	if err != nil {
		log.Errorf("failed to marshal goals list response: %s", err)
		http.Error(w, "failed to marshal goals list response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.goals.updatestatus")
	defer span.End()

	id, ok := goalID(w, r)
	if !ok {
		return
	}

	var statusReq UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		http.Error(w, "update goal status failed", http.StatusBadRequest)
		return
	}
	if !statusReq.Status.IsValid() {
		http.Error(w, "error, invalid goal status", http.StatusBadRequest)
		return
	}

	if err := h.repo.UpdateStatus(ctx, id, statusReq.Status); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update goal %d status: %s", id, err)
		http.Error(w, "goal status not updated", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(UpdateStatusResponse{
		UpdatedID: id,
		Status:    statusReq.Status,
	})
	if err != nil {
		log.Errorf("failed to marshal update status response: %s", err)
		http.Error(w, "failed to marshal update status response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.goals.delete")
	defer span.End()

	id, ok := goalID(w, r)
	if !ok {
		return
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			log.Debugf("goal %d not found", id)
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete goal %d: %s", id, err)
		http.Error(w, "goal not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteGoalResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, deleteRespJson, http.StatusOK)
}

func (h *Handler) HandleAddProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.goals.newprogress")
	defer span.End()

	id, ok := goalID(w, r)
	if !ok {
		return
	}

	var entry ProgressEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "add goal progress failed", http.StatusBadRequest)
		return
	}
	entry.GoalID = id
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}

	// reject progress for unknown goals upfront
	if _, err := h.repo.Get(ctx, id); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get goal %d: %s", id, err)
		http.Error(w, "failed to get goal", http.StatusInternalServerError)
		return
	}

	addedEntry, err := h.repo.AddProgress(ctx, entry)
	if err != nil {
		log.Errorf("failed to add progress for goal %d: %s", id, err)
		http.Error(w, "error, failed to add goal progress", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(addedEntry)
	if err != nil {
		log.Errorf("failed to marshal new goal progress: %s", err)
		http.Error(w, "error, failed to add goal progress", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.goals.progress")
	defer span.End()

	id, ok := goalID(w, r)
	if !ok {
		return
	}

	goal, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get goal %d: %s", id, err)
		http.Error(w, "failed to get goal", http.StatusInternalServerError)
		return
	}

	history, err := h.repo.ProgressHistory(ctx, id)
	if err != nil {
		log.Errorf("failed to get progress history for goal %d: %s", id, err)
		http.Error(w, "failed to get goal progress", http.StatusInternalServerError)
		return
	}

	progress := ComputeProgress(*goal, history, time.Now(), h.thresholds)

	respJson, err := json.Marshal(GoalWithProgress{
		Goal:     *goal,
		Progress: progress,
	})
	if err != nil {
		log.Errorf("failed to marshal goal progress: %s", err)
		http.Error(w, "failed to marshal goal progress", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func goalID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
