package streaks

import (
	"github.com/2beens/mobilitystats/internal/mobility/posture"
	"github.com/2beens/mobilitystats/internal/mobility/workouts"
)

// RecordsFrom maps workouts and posture sessions to activity records. A day
// with either counts as an activity day; workout kinds outside the known set
// fall back to "other".
func RecordsFrom(workoutList []workouts.Workout, sessions []posture.Session) []ActivityRecord {
	records := make([]ActivityRecord, 0, len(workoutList)+len(sessions))
	for _, w := range workoutList {
		kind := ActivityKind(w.Kind)
		if !kind.IsValid() {
			kind = ActivityKindOther
		}
		records = append(records, ActivityRecord{
			Date: w.PerformedAt,
			Kind: kind,
		})
	}
	for _, s := range sessions {
		records = append(records, ActivityRecord{
			Date: s.StartedAt,
			Kind: ActivityKindOther,
		})
	}
	return records
}
