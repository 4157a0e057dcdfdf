package goals

import "time"

// Type can be one of:
//   - pain_reduction
//   - symmetry_improvement
//   - posture_score
//   - workout_consistency
//   - workout_streak
//   - custom
type Type string

const (
	TypePainReduction       Type = "pain_reduction"
	TypeSymmetryImprovement Type = "symmetry_improvement"
	TypePostureScore        Type = "posture_score"
	TypeWorkoutConsistency  Type = "workout_consistency"
	TypeWorkoutStreak       Type = "workout_streak"
	TypeCustom              Type = "custom"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypePainReduction, TypeSymmetryImprovement, TypePostureScore,
		TypeWorkoutConsistency, TypeWorkoutStreak, TypeCustom:
		return true
	default:
		return false
	}
}

// Status can be one of: active, paused, completed, failed.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

type Goal struct {
	ID          int        `json:"id"`
	Type        Type       `json:"type"`
	Title       string     `json:"title"`
	ExerciseID  string     `json:"exerciseId,omitempty"`
	Unit        string     `json:"unit,omitempty"`
	StartValue  float64    `json:"startValue"`
	TargetValue float64    `json:"targetValue"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Decreasing reports whether progress means the tracked value going down,
// e.g. a pain reduction goal from 6 to 2.
func (g Goal) Decreasing() bool {
	return g.TargetValue < g.StartValue
}

// ProgressEntry is one measurement logged against a goal.
type ProgressEntry struct {
	ID         int       `json:"id"`
	GoalID     int       `json:"goalId"`
	Value      float64   `json:"value"`
	RecordedAt time.Time `json:"recordedAt"`
}
