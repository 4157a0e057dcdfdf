package posture

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/mobilitystats/internal/mobility/calendar"
	"github.com/2beens/mobilitystats/internal/telemetry/tracing"
	"github.com/2beens/mobilitystats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=posture_mocks_test.go -package=posture_test

type postureRepo interface {
	Add(ctx context.Context, session Session) (*Session, error)
	ListAll(ctx context.Context, params SessionParams) ([]Session, error)
	Delete(ctx context.Context, id int) error
}

type DeleteSessionResponse struct {
	DeletedID int `json:"deletedId"`
}

type ListResponse struct {
	Sessions       []Session `json:"sessions"`
	AverageGoodPct float64   `json:"averageGoodPct"`
}

type Handler struct {
	repo postureRepo
}

func NewHandler(repo postureRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.posture.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var session Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Errorf("new posture session, unmarshal json params: %s", err)
		http.Error(w, "add posture session failed", http.StatusBadRequest)
		return
	}

	if !session.Valid() {
		http.Error(w, "error, invalid posture session", http.StatusBadRequest)
		return
	}

	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now()
	}

	addedSession, err := h.repo.Add(ctx, session)
	if err != nil {
		log.Errorf("failed to add new posture session: %s", err)
		http.Error(w, "error, failed to add new posture session", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(addedSession)
	if err != nil {
		log.Errorf("failed to marshal new posture session: %s", err)
		http.Error(w, "error, failed to add new posture session", http.StatusInternalServerError)
		return
	}

	log.Debugf("new posture session added: %s", addedJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.posture.list")
	defer span.End()

	params := SessionParams{}

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
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			http.Error(w, "error, invalid <limit> param", http.StatusBadRequest)
			return
		}
		params.Limit = limit
	}

	sessions, err := h.repo.ListAll(ctx, params)
	if err != nil {
		log.Errorf("list posture sessions error: %s", err)
		http.Error(w, "failed to get posture sessions", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(ListResponse{
		Sessions:       sessions,
		AverageGoodPct: AverageGoodPct(sessions),
	})
	if err != nil {
		log.Errorf("failed to marshal posture sessions response: %s", err)
		http.Error(w, "failed to marshal posture sessions response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mobility.posture.delete")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "posture session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete posture session %d: %s", id, err)
		http.Error(w, "posture session not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteSessionResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, deleteRespJson, http.StatusOK)
}
