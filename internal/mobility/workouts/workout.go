package workouts

import (
	"encoding/json"
	"math"
	"time"

	"github.com/2beens/mobilitystats/internal/mobility/calendar"
)

// Side can be one of:
//   - left
//   - right
//   - bilateral
type Side string

const (
	SideLeft      Side = "left"
	SideRight     Side = "right"
	SideBilateral Side = "bilateral"
)

func (s Side) String() string {
	return string(s)
}

func (s Side) IsValid() bool {
	switch s {
	case SideLeft, SideRight, SideBilateral:
		return true
	default:
		return false
	}
}

// SetRecord is a single exercise set. All numeric fields are nullable:
// absence means "not tracked", not zero.
type SetRecord struct {
	Reps            *int     `json:"reps,omitempty"`
	WeightKg        *float64 `json:"weightKg,omitempty"`
	DurationSeconds *int     `json:"durationSeconds,omitempty"`
	Side            *Side    `json:"side,omitempty"`
	RPE             *float64 `json:"rpe,omitempty"`
}

type ExerciseEntry struct {
	ExerciseID string      `json:"exerciseId"`
	Sets       []SetRecord `json:"sets"`
}

type Workout struct {
	ID          int             `json:"id"`
	PerformedAt time.Time       `json:"performedAt"`
	Kind        string          `json:"kind"`
	Notes       string          `json:"notes,omitempty"`
	Exercises   []ExerciseEntry `json:"exercises"`
}

// rawWorkoutRow mirrors the loosely-typed shape coming out of the record
// store (older app versions used renamed fields and stringly-typed dates).
// All tolerance for that lives here, never in the analytics functions.
type rawWorkoutRow struct {
	ID        int             `json:"id"`
	Date      string          `json:"date"`
	DateAlt   string          `json:"performed_at"`
	Kind      string          `json:"kind"`
	Type      string          `json:"type"`
	Notes     string          `json:"notes"`
	Exercises json.RawMessage `json:"exercises"`
}

type rawSetRow struct {
	Reps            *float64 `json:"reps"`
	WeightKg        *float64 `json:"weightKg"`
	Weight          *float64 `json:"weight"`
	DurationSeconds *float64 `json:"durationSeconds"`
	Side            string   `json:"side"`
	RPE             *float64 `json:"rpe"`
}

type rawExerciseRow struct {
	ExerciseID string      `json:"exerciseId"`
	Exercise   string      `json:"exercise"`
	Sets       []rawSetRow `json:"sets"`
}

// NormalizeWorkout converts a raw store row into a typed Workout. Rows with
// an unparseable date are rejected (ok == false); individual malformed set
// fields are dropped, never propagated.
func NormalizeWorkout(raw []byte) (Workout, bool) {
	var row rawWorkoutRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return Workout{}, false
	}

	dateStr := row.Date
	if dateStr == "" {
		dateStr = row.DateAlt
	}
	performedAt, ok := calendar.ParseDate(dateStr)
	if !ok {
		return Workout{}, false
	}

	kind := row.Kind
	if kind == "" {
		kind = row.Type
	}

	w := Workout{
		ID:          row.ID,
		PerformedAt: performedAt,
		Kind:        kind,
		Notes:       row.Notes,
	}

	if len(row.Exercises) > 0 {
		var rawExercises []rawExerciseRow
		if err := json.Unmarshal(row.Exercises, &rawExercises); err == nil {
			for _, rawEx := range rawExercises {
				exID := rawEx.ExerciseID
				if exID == "" {
					exID = rawEx.Exercise
				}
				if exID == "" {
					continue
				}
				entry := ExerciseEntry{ExerciseID: exID}
				for _, rawSet := range rawEx.Sets {
					entry.Sets = append(entry.Sets, normalizeSet(rawSet))
				}
				w.Exercises = append(w.Exercises, entry)
			}
		}
	}

	return w, true
}

func normalizeSet(raw rawSetRow) SetRecord {
	var set SetRecord

	if raw.Reps != nil && isFinite(*raw.Reps) {
		reps := int(*raw.Reps)
		set.Reps = &reps
	}

	weight := raw.WeightKg
	if weight == nil {
		weight = raw.Weight
	}
	if weight != nil && isFinite(*weight) {
		w := *weight
		set.WeightKg = &w
	}

	if raw.DurationSeconds != nil && isFinite(*raw.DurationSeconds) {
		dur := int(*raw.DurationSeconds)
		set.DurationSeconds = &dur
	}

	if side := Side(raw.Side); side.IsValid() {
		set.Side = &side
	}

	if raw.RPE != nil && isFinite(*raw.RPE) {
		rpe := *raw.RPE
		set.RPE = &rpe
	}

	return set
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
