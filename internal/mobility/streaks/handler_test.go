package streaks_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2beens/mobilitystats/internal/mobility/posture"
	"github.com/2beens/mobilitystats/internal/mobility/streaks"
	"github.com/2beens/mobilitystats/internal/mobility/workouts"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_HandleStreak(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workoutsMock := NewMockworkoutsSource(ctrl)
	postureMock := NewMockpostureSource(ctrl)

	now := time.Now()
	workoutsMock.EXPECT().
		ListAll(gomock.Any(), workouts.ListParams{}).
		Return([]workouts.Workout{
			{ID: 1, Kind: "gym", PerformedAt: now},
			{ID: 2, Kind: "corrective", PerformedAt: now.AddDate(0, 0, -1)},
		}, nil)
	postureMock.EXPECT().
		ListAll(gomock.Any(), posture.SessionParams{}).
		Return([]posture.Session{
			{ID: 1, StartedAt: now.AddDate(0, 0, -2), DurationSeconds: 900, GoodPosturePct: 75},
		}, nil)

	handler := streaks.NewHandler(workoutsMock, postureMock)

	req := httptest.NewRequest("GET", "/mobility/streak", nil)
	rr := httptest.NewRecorder()
	handler.HandleStreak(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var stats streaks.Stats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 3, stats.BestStreak)
	assert.Equal(t, 3, stats.TotalActivityDays)
}

func TestHandler_HandleStreak_sourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workoutsMock := NewMockworkoutsSource(ctrl)
	postureMock := NewMockpostureSource(ctrl)

	workoutsMock.EXPECT().
		ListAll(gomock.Any(), workouts.ListParams{}).
		Return(nil, errors.New("db down"))

	handler := streaks.NewHandler(workoutsMock, postureMock)

	req := httptest.NewRequest("GET", "/mobility/streak", nil)
	rr := httptest.NewRecorder()
	handler.HandleStreak(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHandler_HandleHeatmap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workoutsMock := NewMockworkoutsSource(ctrl)
	postureMock := NewMockpostureSource(ctrl)

	now := time.Now()
	workoutsMock.EXPECT().
		ListAll(gomock.Any(), workouts.ListParams{}).
		Return([]workouts.Workout{
			{ID: 1, Kind: "gym", PerformedAt: now},
			{ID: 2, Kind: "gym", PerformedAt: now},
		}, nil)
	postureMock.EXPECT().
		ListAll(gomock.Any(), posture.SessionParams{}).
		Return([]posture.Session{}, nil)

	handler := streaks.NewHandler(workoutsMock, postureMock)

	req := httptest.NewRequest("GET", "/mobility/streak/heatmap/2", nil)
	req = mux.SetURLVars(req, map[string]string{"months": "2"})
	rr := httptest.NewRecorder()
	handler.HandleHeatmap(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp streaks.HeatmapResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Months, 2)

	// both workouts land on today's cell
	today := now.Format("2006-01-02")
	var found bool
	for _, month := range resp.Months {
		for _, day := range month.Days {
			if day.Date == today {
				assert.Equal(t, 2, day.Count)
				found = true
			}
		}
	}
	assert.True(t, found)
}

func TestHandler_HandleHeatmap_invalidMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := streaks.NewHandler(
		NewMockworkoutsSource(ctrl),
		NewMockpostureSource(ctrl),
	)

	for _, months := range []string{"", "0", "-3", "42", "abc"} {
		req := httptest.NewRequest("GET", "/mobility/streak/heatmap/x", nil)
		req = mux.SetURLVars(req, map[string]string{"months": months})
		rr := httptest.NewRecorder()
		handler.HandleHeatmap(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "months=%q", months)
	}
}
