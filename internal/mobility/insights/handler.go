package insights

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/mobilitystats/internal/telemetry/metrics"
	"github.com/2beens/mobilitystats/internal/telemetry/tracing"
	"github.com/2beens/mobilitystats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=insights_mocks_test.go -package=insights_test

type snapshotBuilder interface {
	Build(ctx context.Context) (Snapshot, error)
}

type dismissalStore interface {
	Load(ctx context.Context) (map[string]time.Time, error)
	Dismiss(ctx context.Context, id string, at time.Time) error
}

type GenerateResponse struct {
	Insights []Insight `json:"insights"`
	Total    int       `json:"total"`
}

type DismissResponse struct {
	DismissedID string `json:"dismissedId"`
}

type Handler struct {
	builder    snapshotBuilder
	dismissals dismissalStore
	engine     *Engine
	metrics    *metrics.Manager
}

func NewHandler(
	builder snapshotBuilder,
	dismissals dismissalStore,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		builder:    builder,
		dismissals: dismissals,
		engine:     NewEngine(DefaultThresholds(), DefaultMaxInsights),
		metrics:    metricsManager,
	}
}

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.insights.generate")
	defer span.End()

	snap, err := h.builder.Build(ctx)
	if err != nil {
		// detectors treat missing collections as no data, so a partial
		// snapshot still produces whatever insights it can
		log.Warnf("insights snapshot built with errors: %s", err)
	}

	dismissed, err := h.dismissals.Load(ctx)
	if err != nil {
		log.Warnf("failed to load insight dismissals, dismissed insights may resurface: %s", err)
		dismissed = nil
	}

	generated := h.engine.Generate(snap, dismissed)
	h.metrics.CounterInsightsGenerated.Add(float64(len(generated)))

	respJson, err := json.Marshal(GenerateResponse{
		Insights: generated,
		Total:    len(generated),
	})
	if err != nil {
		log.Errorf("failed to marshal insights response: %s", err)
		http.Error(w, "failed to generate insights", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (h *Handler) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.insights.dismiss")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, insight id empty", http.StatusBadRequest)
		return
	}

	if err := h.dismissals.Dismiss(ctx, id, time.Now()); err != nil {
		log.Errorf("failed to dismiss insight [%s]: %s", id, err)
		http.Error(w, "error, failed to dismiss insight", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterInsightsDismissed.Inc()

	respJson, err := json.Marshal(DismissResponse{DismissedID: id})
	if err != nil {
		log.Errorf("failed to marshal insight dismiss response: %s", err)
		http.Error(w, "error, failed to dismiss insight", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
