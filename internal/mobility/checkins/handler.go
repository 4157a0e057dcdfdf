package checkins

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/mobilitystats/internal/mobility/calendar"
	"github.com/2beens/mobilitystats/internal/telemetry/metrics"
	"github.com/2beens/mobilitystats/internal/telemetry/tracing"
	"github.com/2beens/mobilitystats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=checkins_mocks_test.go -package=checkins_test

type checkinsRepo interface {
	Add(ctx context.Context, entry Entry) (*Entry, error)
	Get(ctx context.Context, id int) (*Entry, error)
	ListAll(ctx context.Context, params EntryParams) ([]Entry, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context, params EntryParams) (int, error)
}

type DeleteEntryResponse struct {
	DeletedID int `json:"deletedId"`
}

type ListResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

type Handler struct {
	repo    checkinsRepo
	metrics *metrics.Manager
}

func NewHandler(repo checkinsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

// valueInRange checks the metric value against the scale of its kind: pain
// levels live on 0-10, posture scores on 0-100.
func valueInRange(kind Kind, value float64) bool {
	switch kind {
	case KindPostureScore:
		return value >= 0 && value <= 100
	default:
		return value >= 0 && value <= 10
	}
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.checkins.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Errorf("new check-in, unmarshal json params: %s", err)
		http.Error(w, "add check-in failed", http.StatusBadRequest)
		return
	}

	if !entry.Kind.IsValid() {
		http.Error(w, "error, invalid check-in kind", http.StatusBadRequest)
		return
	}
	if !valueInRange(entry.Kind, entry.Value) {
		http.Error(w, "error, check-in value out of range", http.StatusBadRequest)
		return
	}

	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}

	addedEntry, err := h.repo.Add(ctx, entry)
	if err != nil {
		log.Errorf("failed to add new check-in [%s]: %s", entry.Kind, err)
		http.Error(w, "error, failed to add new check-in", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterCheckins.Inc()

	addedJson, err := json.Marshal(addedEntry)
	if err != nil {
		log.Errorf("failed to marshal new check-in: %s", err)
		http.Error(w, "error, failed to add new check-in", http.StatusInternalServerError)
		return
	}

	log.Debugf("new check-in added: %s", addedJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.checkins.list")
	defer span.End()

	params := EntryParams{}

	if kindStr := r.URL.Query().Get("kind"); kindStr != "" {
		kind := Kind(kindStr)
		if !kind.IsValid() {
			http.Error(w, "error, invalid check-in kind", http.StatusBadRequest)
			return
		}
		params.Kind = &kind
	}
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, ok := calendar.ParseDate(fromStr)
		if !ok {
			http.Error(w, "error, invalid <from> param", http.StatusBadRequest)
			return
		}
		params.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, ok := calendar.ParseDate(toStr)
		if !ok {
			http.Error(w, "error, invalid <to> param", http.StatusBadRequest)
			return
		}
		params.To = &to
	}

	entries, err := h.repo.ListAll(ctx, params)
	if err != nil {
		log.Errorf("list check-ins error: %s", err)
		http.Error(w, "failed to get check-ins", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(ListResponse{
		Entries: entries,
		Total:   len(entries),
	})
	if err != nil {
		log.Errorf("failed to marshal check-ins list response: %s", err)
		http.Error(w, "failed to marshal check-ins list response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.checkins.delete")
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

	if err := h.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			log.Debugf("check-in %d not found", id)
			http.Error(w, "check-in not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete check-in %d: %s", id, err)
		http.Error(w, "check-in not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteEntryResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, deleteRespJson, http.StatusOK)
}
