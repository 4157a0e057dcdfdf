package checkins

import "time"

// Kind can be one of:
//   - pain
//   - posture_score
//   - pain_before_workout
//   - pain_after_workout
type Kind string

const (
	KindPain              Kind = "pain"
	KindPostureScore      Kind = "posture_score"
	KindPainBeforeWorkout Kind = "pain_before_workout"
	KindPainAfterWorkout  Kind = "pain_after_workout"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindPain,
		KindPostureScore,
		KindPainBeforeWorkout,
		KindPainAfterWorkout:
		return true
	default:
		return false
	}
}

// Entry (DB level type) is a single self-reported daily metric sent from
// the phone app, such as:
//   - pain level (0-10 scale)
//   - posture score (0-100 scale)
//   - pain level right before / after a workout
type Entry struct {
	ID         int       `json:"id"`
	Kind       Kind      `json:"kind"`
	Value      float64   `json:"value"`
	Note       string    `json:"note,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
	// WorkoutID links a before/after-workout pain level to its workout.
	WorkoutID *int `json:"workoutId,omitempty"`
}
