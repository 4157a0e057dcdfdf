package goals

import (
	"sort"
	"time"
)

// Trend says which way the last two logged values moved, relative to the
// goal direction.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendWorsening Trend = "worsening"
	TrendStable    Trend = "stable"
)

type Progress struct {
	GoalID       int     `json:"goalId"`
	CurrentValue float64 `json:"currentValue"`
	// Percent is how far the current value sits between start and target,
	// clamped to [0, 100]
	Percent float64 `json:"percent"`
	// Trend compares the two most recent logged values; stable with fewer
	// than two entries
	Trend Trend `json:"trend"`
	// OnTrack is nil for goals without a deadline
	OnTrack *bool `json:"onTrack,omitempty"`
	// ProjectedAchievement extrapolates the logged progress linearly; nil
	// when there is not enough history or progress is moving away from the
	// target
	ProjectedAchievement *time.Time `json:"projectedAchievement,omitempty"`
}

// ProgressThresholds holds the tuning knobs for on-track classification.
type ProgressThresholds struct {
	// OnTrackBandPct: progress may lag the linear deadline pace by up to
	// this many percent points and still count as on track
	OnTrackBandPct float64
}

func DefaultProgressThresholds() ProgressThresholds {
	return ProgressThresholds{
		OnTrackBandPct: 5,
	}
}

// ComputeProgress scores a goal against its logged history. With no history
// the current value is the start value and progress is zero.
func ComputeProgress(goal Goal, history []ProgressEntry, now time.Time, thresholds ProgressThresholds) Progress {
	history = sortedByTime(history)

	current := goal.StartValue
	if len(history) > 0 {
		current = history[len(history)-1].Value
	}

	progress := Progress{
		GoalID:       goal.ID,
		CurrentValue: current,
		Percent:      percentDone(goal, current),
		Trend:        classifyTrend(goal, history),
	}

	if goal.Deadline != nil {
		onTrack := isOnTrack(goal, progress.Percent, now, thresholds)
		progress.OnTrack = &onTrack
	}

	progress.ProjectedAchievement = projectAchievement(goal, history)

	return progress
}

// percentDone is 100 * (current - start) / (target - start), clamped to
// [0, 100]. The same formula covers decreasing goals since both differences
// flip sign. A target equal to the start value is done only once the current
// value sits exactly on it.
func percentDone(goal Goal, current float64) float64 {
	span := goal.TargetValue - goal.StartValue
	if span == 0 {
		if current == goal.TargetValue {
			return 100
		}
		return 0
	}
	percent := 100 * (current - goal.StartValue) / span
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// classifyTrend compares the two most recent logged values, with a
// decreasing goal a drop counts as improving.
func classifyTrend(goal Goal, sortedHistory []ProgressEntry) Trend {
	if len(sortedHistory) < 2 {
		return TrendStable
	}
	prev := sortedHistory[len(sortedHistory)-2].Value
	last := sortedHistory[len(sortedHistory)-1].Value
	switch {
	case last == prev:
		return TrendStable
	case (last < prev) == goal.Decreasing():
		return TrendImproving
	default:
		return TrendWorsening
	}
}

func isOnTrack(goal Goal, percent float64, now time.Time, thresholds ProgressThresholds) bool {
	total := goal.Deadline.Sub(goal.CreatedAt)
	if total <= 0 {
		return percent >= 100
	}

	elapsed := now.Sub(goal.CreatedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > total {
		elapsed = total
	}

	expectedPercent := 100 * float64(elapsed) / float64(total)
	return percent >= expectedPercent-thresholds.OnTrackBandPct
}

// projectAchievement extrapolates the first and last history points
// linearly to the target value. No projection is made with fewer than two
// points, with no time between them, or when the value moves away from the
// target.
func projectAchievement(goal Goal, sortedHistory []ProgressEntry) *time.Time {
	if len(sortedHistory) < 2 {
		return nil
	}

	first := sortedHistory[0]
	last := sortedHistory[len(sortedHistory)-1]

	elapsed := last.RecordedAt.Sub(first.RecordedAt)
	if elapsed <= 0 {
		return nil
	}

	rate := (last.Value - first.Value) / float64(elapsed)
	remaining := goal.TargetValue - last.Value

	if remaining == 0 {
		achievedAt := last.RecordedAt
		return &achievedAt
	}

	// the value has to be moving towards the target
	if rate == 0 || (remaining > 0) != (rate > 0) {
		return nil
	}

	projected := last.RecordedAt.Add(time.Duration(remaining / rate))
	return &projected
}

func sortedByTime(history []ProgressEntry) []ProgressEntry {
	sorted := make([]ProgressEntry, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].RecordedAt.Before(sorted[j].RecordedAt)
	})
	return sorted
}
