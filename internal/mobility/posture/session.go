package posture

import "time"

// Session is one posture-tracking session reported by the phone app: how
// long the tracker ran and which share of that time was spent in good
// posture (0-100).
type Session struct {
	ID              int       `json:"id"`
	StartedAt       time.Time `json:"startedAt"`
	DurationSeconds int       `json:"durationSeconds"`
	GoodPosturePct  float64   `json:"goodPosturePct"`
}

func (s Session) Valid() bool {
	return s.DurationSeconds > 0 && s.GoodPosturePct >= 0 && s.GoodPosturePct <= 100
}

// AverageGoodPct is the duration-weighted average good-posture share of the
// given sessions, 0 when there are none.
func AverageGoodPct(sessions []Session) float64 {
	var weightedSum, totalDuration float64
	for _, s := range sessions {
		if s.DurationSeconds <= 0 {
			continue
		}
		weightedSum += s.GoodPosturePct * float64(s.DurationSeconds)
		totalDuration += float64(s.DurationSeconds)
	}
	if totalDuration == 0 {
		return 0
	}
	return weightedSum / totalDuration
}
