package badges

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/mobilitystats/internal/mobility/goals"
	"github.com/2beens/mobilitystats/internal/telemetry/metrics"
	"github.com/2beens/mobilitystats/internal/telemetry/tracing"
	"github.com/2beens/mobilitystats/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=badges_mocks_test.go -package=badges_test

type goalsSource interface {
	ListAll(ctx context.Context, params goals.GoalParams) ([]goals.Goal, error)
}

type badgeAwarder interface {
	Evaluate(ctx context.Context, completed []goals.Goal) ([]Badge, error)
}

type badgesLister interface {
	ListAll(ctx context.Context) ([]Badge, error)
}

type EvaluateResponse struct {
	Awarded []Badge `json:"awarded"`
	Total   int     `json:"total"`
}

type ListResponse struct {
	Badges []Badge `json:"badges"`
	Total  int     `json:"total"`
}

type CatalogResponse struct {
	Catalog []CatalogEntry `json:"catalog"`
}

type Handler struct {
	goals   goalsSource
	awarder badgeAwarder
	repo    badgesLister
	metrics *metrics.Manager
}

func NewHandler(
	goalsRepo goalsSource,
	awarder badgeAwarder,
	repo badgesLister,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		goals:   goalsRepo,
		awarder: awarder,
		repo:    repo,
		metrics: metricsManager,
	}
}

// HandleEvaluate checks all completed goals against the badge rules and
// awards whatever is still missing. The phone app calls this after every
// goal status change.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.badges.evaluate")
	defer span.End()

	completedStatus := goals.StatusCompleted
	completed, err := h.goals.ListAll(ctx, goals.GoalParams{Status: &completedStatus})
	if err != nil {
		log.Errorf("evaluate badges, list completed goals: %s", err)
		http.Error(w, "error, failed to evaluate badges", http.StatusInternalServerError)
		return
	}

	awarded, err := h.awarder.Evaluate(ctx, completed)
	if err != nil {
		log.Errorf("evaluate badges: %s", err)
		http.Error(w, "error, failed to evaluate badges", http.StatusInternalServerError)
		return
	}

	if len(awarded) > 0 {
		h.metrics.CounterBadgesAwarded.Add(float64(len(awarded)))
	}

	respJson, err := json.Marshal(EvaluateResponse{
		Awarded: awarded,
		Total:   len(awarded),
	})
	if err != nil {
		log.Errorf("failed to marshal badges evaluate response: %s", err)
		http.Error(w, "error, failed to evaluate badges", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.badges.list")
	defer span.End()

	badges, err := h.repo.ListAll(ctx)
	if err != nil {
		log.Errorf("list badges: %s", err)
		http.Error(w, "failed to get badges", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListResponse{
		Badges: badges,
		Total:  len(badges),
	})
	if err != nil {
		log.Errorf("failed to marshal badges list response: %s", err)
		http.Error(w, "failed to get badges", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (h *Handler) HandleCatalog(w http.ResponseWriter, _ *http.Request) {
	respJson, err := json.Marshal(CatalogResponse{Catalog: Catalog()})
	if err != nil {
		log.Errorf("failed to marshal badges catalog: %s", err)
		http.Error(w, "failed to get badges catalog", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
