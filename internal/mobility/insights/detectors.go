package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/2beens/mobilitystats/internal/mobility/calendar"
	"github.com/2beens/mobilitystats/internal/mobility/checkins"
	"github.com/2beens/mobilitystats/internal/mobility/posture"
	"github.com/2beens/mobilitystats/internal/mobility/workouts"
)

const (
	// rolling half-window for the pain / posture score trend comparison:
	// the last trendHalfWindowDays vs the trendHalfWindowDays before them
	trendHalfWindowDays = 7

	// streaks shorter than this are not worth celebrating or mourning
	minStreakWorthNoting = 3

	// a broken streak older than this is stale news, not an insight
	streakBrokenWindowDays = 7

	// how many trailing weekly asymmetry points form the current window
	symmetryTrendWeeks = 4
)

var (
	streakMilestones      = []int{7, 14, 21, 30, 60, 90, 100}
	activityDayMilestones = []int{10, 25, 50, 100, 200, 365, 500}
)

// Thresholds holds the tuning knobs of all detectors. The defaults match
// what the phone app shipped with, they are deliberately coarse so insights
// fire on real changes and not on day-to-day noise.
type Thresholds struct {
	PainTrendPct          float64
	PostureTrendPct       float64
	SymmetryTrendPts      float64
	ImbalancePct          int
	RecoveryMinPairs      int
	RecoveryPainDelta     float64
	CorrectiveStaleDays   int
	PostureQualityGoodPct float64
	PostureQualityLowPct  float64
	PostureQualityWindow  int
	WeekdayMinWorkouts    int
	WeekdayMinDistinct    int
	WeekdayMinGap         int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		PainTrendPct:          10,
		PostureTrendPct:       8,
		SymmetryTrendPts:      2,
		ImbalancePct:          8,
		RecoveryMinPairs:      3,
		RecoveryPainDelta:     0.5,
		CorrectiveStaleDays:   3,
		PostureQualityGoodPct: 80,
		PostureQualityLowPct:  50,
		PostureQualityWindow:  5,
		WeekdayMinWorkouts:    14,
		WeekdayMinDistinct:    3,
		WeekdayMinGap:         3,
	}
}

// Detector inspects one slice of the snapshot and emits at most one insight.
// Detectors are pure and order-insensitive, adding a new one never touches
// the merge logic.
type Detector interface {
	ID() string
	Evaluate(snap Snapshot) *Insight
}

// Registry returns all detectors, wired with the given thresholds.
func Registry(thresholds Thresholds) []Detector {
	return []Detector{
		painTrendDetector{thresholds},
		postureTrendDetector{thresholds},
		symmetryTrendDetector{thresholds},
		streakMilestoneDetector{},
		streakBrokenDetector{},
		personalBestStreakDetector{},
		imbalanceDetector{thresholds},
		recoveryDetector{thresholds},
		correctiveConsistencyDetector{},
		correctiveStaleDetector{thresholds},
		postureQualityDetector{thresholds},
		weekdayPatternDetector{thresholds},
		activityDaysMilestoneDetector{},
	}
}

func entriesBetween(entries []checkins.Entry, from, to time.Time) []checkins.Entry {
	var within []checkins.Entry
	for _, e := range entries {
		if e.RecordedAt.After(from) && !e.RecordedAt.After(to) {
			within = append(within, e)
		}
	}
	return within
}

func avgValue(entries []checkins.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		sum += e.Value
	}
	return sum / float64(len(entries))
}

// rollingChange compares the average value of the last half-window against
// the half-window before it and returns the relative change. ok is false
// when the history is too short for the comparison: entries must reach back
// further than the two windows, and both windows must be populated.
func rollingChange(entries []checkins.Entry, now time.Time) (change float64, ok bool) {
	if len(entries) == 0 {
		return 0, false
	}

	oldest := entries[0].RecordedAt
	for _, e := range entries {
		if e.RecordedAt.Before(oldest) {
			oldest = e.RecordedAt
		}
	}
	fullWindow := time.Duration(2*trendHalfWindowDays) * 24 * time.Hour
	if now.Sub(oldest) <= fullWindow {
		return 0, false
	}

	halfWindow := time.Duration(trendHalfWindowDays) * 24 * time.Hour
	recent := entriesBetween(entries, now.Add(-halfWindow), now)
	prior := entriesBetween(entries, now.Add(-fullWindow), now.Add(-halfWindow))
	if len(recent) == 0 || len(prior) == 0 {
		return 0, false
	}

	priorAvg := avgValue(prior)
	if priorAvg == 0 {
		return 0, false
	}
	return (avgValue(recent) - priorAvg) / priorAvg, true
}

type painTrendDetector struct {
	thresholds Thresholds
}

func (d painTrendDetector) ID() string { return "pain-trend" }

func (d painTrendDetector) Evaluate(snap Snapshot) *Insight {
	change, ok := rollingChange(snap.PainEntries, snap.Now)
	if !ok || math.Abs(change) < d.thresholds.PainTrendPct/100 {
		return nil
	}

	if change < 0 {
		return &Insight{
			ID:          d.ID(),
			Category:    CategoryPain,
			Priority:    2,
			Title:       "Pain is trending down",
			Body:        fmt.Sprintf("Your average pain level dropped %.0f%% over the last week. Whatever you are doing, keep doing it.", math.Abs(change)*100),
			AccentColor: accentGreen,
			Route:       "/checkins",
			Dismissible: true,
		}
	}
	return &Insight{
		ID:          d.ID(),
		Category:    CategoryPain,
		Priority:    1,
		Title:       "Pain is trending up",
		Body:        fmt.Sprintf("Your average pain level rose %.0f%% compared to the week before. Consider dialing the load back a bit.", change*100),
		AccentColor: accentRed,
		Route:       "/checkins",
		Dismissible: true,
	}
}

type postureTrendDetector struct {
	thresholds Thresholds
}

func (d postureTrendDetector) ID() string { return "posture-trend" }

func (d postureTrendDetector) Evaluate(snap Snapshot) *Insight {
	change, ok := rollingChange(snap.PostureScores, snap.Now)
	if !ok || math.Abs(change) < d.thresholds.PostureTrendPct/100 {
		return nil
	}

	if change > 0 {
		return &Insight{
			ID:          d.ID(),
			Category:    CategoryPosture,
			Priority:    3,
			Title:       "Posture score improving",
			Body:        fmt.Sprintf("Your posture score went up %.0f%% over the last week.", change*100),
			AccentColor: accentGreen,
			Route:       "/posture",
			Dismissible: true,
		}
	}
	return &Insight{
		ID:          d.ID(),
		Category:    CategoryPosture,
		Priority:    2,
		Title:       "Posture score slipping",
		Body:        fmt.Sprintf("Your posture score dropped %.0f%% compared to the week before.", math.Abs(change)*100),
		AccentColor: accentAmber,
		Route:       "/posture",
		Dismissible: true,
	}
}

type symmetryTrendDetector struct {
	thresholds Thresholds
}

func (d symmetryTrendDetector) ID() string { return "symmetry-trend" }

func (d symmetryTrendDetector) Evaluate(snap Snapshot) *Insight {
	if snap.Asymmetry == nil {
		return nil
	}
	points := snap.Asymmetry.WeeklyPoints
	if len(points) <= symmetryTrendWeeks {
		return nil
	}

	recent := points[len(points)-symmetryTrendWeeks:]
	prior := points[:len(points)-symmetryTrendWeeks]
	if len(prior) > symmetryTrendWeeks {
		prior = prior[len(prior)-symmetryTrendWeeks:]
	}

	delta := avgAbsImbalance(prior) - avgAbsImbalance(recent)
	if math.Abs(delta) < d.thresholds.SymmetryTrendPts {
		return nil
	}

	if delta > 0 {
		return &Insight{
			ID:          d.ID(),
			Category:    CategorySymmetry,
			Priority:    3,
			Title:       "Left/right balance improving",
			Body:        fmt.Sprintf("Your side imbalance shrunk by %.0f points over the last weeks.", delta),
			AccentColor: accentGreen,
			Route:       "/stats/asymmetry",
			Dismissible: true,
		}
	}
	return &Insight{
		ID:          d.ID(),
		Category:    CategorySymmetry,
		Priority:    2,
		Title:       "Left/right balance worsening",
		Body:        fmt.Sprintf("Your side imbalance grew by %.0f points over the last weeks.", math.Abs(delta)),
		AccentColor: accentAmber,
		Route:       "/stats/asymmetry",
		Dismissible: true,
	}
}

func avgAbsImbalance(points []workouts.WeeklySidePoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += math.Abs(float64(p.ImbalancePct))
	}
	return sum / float64(len(points))
}

type streakMilestoneDetector struct{}

func (d streakMilestoneDetector) ID() string { return "streak-milestone" }

func (d streakMilestoneDetector) Evaluate(snap Snapshot) *Insight {
	for _, milestone := range streakMilestones {
		if snap.Streak.CurrentStreak != milestone {
			continue
		}
		return &Insight{
			ID:          fmt.Sprintf("%s-%d", d.ID(), milestone),
			Category:    CategoryStreak,
			Priority:    2,
			Title:       fmt.Sprintf("%d days in a row!", milestone),
			Body:        fmt.Sprintf("You hit a %d-day activity streak. Nice work.", milestone),
			AccentColor: accentGreen,
			Route:       "/streak",
			Dismissible: true,
		}
	}
	return nil
}

type streakBrokenDetector struct{}

func (d streakBrokenDetector) ID() string { return "streak-broken" }

func (d streakBrokenDetector) Evaluate(snap Snapshot) *Insight {
	if snap.Streak.CurrentStreak != 0 || snap.Streak.BestStreak < minStreakWorthNoting {
		return nil
	}
	if len(snap.Streak.ActivityDates) == 0 {
		return nil
	}

	// activity dates are sorted ascending
	last, ok := calendar.ParseDate(snap.Streak.ActivityDates[len(snap.Streak.ActivityDates)-1])
	if !ok {
		return nil
	}
	daysSince := int(math.Round(calendar.DayOf(snap.Now).Sub(last).Hours() / 24))
	if daysSince > streakBrokenWindowDays {
		return nil
	}

	return &Insight{
		ID:          d.ID(),
		Category:    CategoryStreak,
		Priority:    2,
		Title:       "Streak broken",
		Body:        fmt.Sprintf("Your activity streak ended %d days ago. A short session today starts a new one.", daysSince),
		AccentColor: accentAmber,
		Route:       "/streak",
		Dismissible: true,
	}
}

type personalBestStreakDetector struct{}

func (d personalBestStreakDetector) ID() string { return "personal-best-streak" }

func (d personalBestStreakDetector) Evaluate(snap Snapshot) *Insight {
	if snap.Streak.CurrentStreak < minStreakWorthNoting {
		return nil
	}
	if snap.Streak.CurrentStreak != snap.Streak.BestStreak {
		return nil
	}
	return &Insight{
		ID:          d.ID(),
		Category:    CategoryStreak,
		Priority:    2,
		Title:       "Personal best streak",
		Body:        fmt.Sprintf("Your current %d-day streak is the longest you've ever had.", snap.Streak.CurrentStreak),
		AccentColor: accentGreen,
		Route:       "/streak",
		Dismissible: true,
	}
}

type imbalanceDetector struct {
	thresholds Thresholds
}

func (d imbalanceDetector) ID() string { return "imbalance" }

func (d imbalanceDetector) Evaluate(snap Snapshot) *Insight {
	if snap.Asymmetry == nil {
		return nil
	}
	pct := snap.Asymmetry.CurrentImbalancePct
	if pct < d.thresholds.ImbalancePct && pct > -d.thresholds.ImbalancePct {
		return nil
	}

	side := "left"
	if pct < 0 {
		side = "right"
		pct = -pct
	}
	return &Insight{
		ID:          d.ID(),
		Category:    CategorySymmetry,
		Priority:    2,
		Title:       "Side imbalance detected",
		Body:        fmt.Sprintf("Your %s side is doing %d%% more volume than the other. Consider adding extra sets on the weaker side.", side, pct),
		AccentColor: accentAmber,
		Route:       "/stats/asymmetry",
		Dismissible: true,
	}
}

type recoveryDetector struct {
	thresholds Thresholds
}

func (d recoveryDetector) ID() string { return "recovery-pain-impact" }

func (d recoveryDetector) Evaluate(snap Snapshot) *Insight {
	type pair struct {
		beforeSum, afterSum     float64
		beforeCount, afterCount int
	}
	pairs := make(map[int]*pair)
	for _, e := range snap.PainBefore {
		if e.WorkoutID == nil {
			continue
		}
		p, ok := pairs[*e.WorkoutID]
		if !ok {
			p = &pair{}
			pairs[*e.WorkoutID] = p
		}
		p.beforeSum += e.Value
		p.beforeCount++
	}
	for _, e := range snap.PainAfter {
		if e.WorkoutID == nil {
			continue
		}
		p, ok := pairs[*e.WorkoutID]
		if !ok {
			continue
		}
		p.afterSum += e.Value
		p.afterCount++
	}

	var deltaSum float64
	var complete int
	for _, p := range pairs {
		if p.beforeCount == 0 || p.afterCount == 0 {
			continue
		}
		deltaSum += p.afterSum/float64(p.afterCount) - p.beforeSum/float64(p.beforeCount)
		complete++
	}
	if complete < d.thresholds.RecoveryMinPairs {
		return nil
	}

	avgDelta := deltaSum / float64(complete)
	if avgDelta <= -d.thresholds.RecoveryPainDelta {
		return &Insight{
			ID:          d.ID(),
			Category:    CategoryRecovery,
			Priority:    2,
			Title:       "Workouts ease your pain",
			Body:        fmt.Sprintf("On average your pain drops %.1f points after a workout. Movement is working for you.", math.Abs(avgDelta)),
			AccentColor: accentGreen,
			Dismissible: true,
		}
	}
	if avgDelta >= d.thresholds.RecoveryPainDelta {
		return &Insight{
			ID:          d.ID(),
			Category:    CategoryRecovery,
			Priority:    1,
			Title:       "Pain rises after workouts",
			Body:        fmt.Sprintf("On average your pain goes up %.1f points after a workout. The current load may be too much.", avgDelta),
			AccentColor: accentRed,
			Dismissible: true,
		}
	}
	return nil
}

type correctiveConsistencyDetector struct{}

func (d correctiveConsistencyDetector) ID() string { return "corrective-consistency" }

// Evaluate compares the two most recent completed weeks of corrective work.
// The running week is skipped so a quiet Monday morning does not read as a
// drop.
func (d correctiveConsistencyDetector) Evaluate(snap Snapshot) *Insight {
	thisWeekStart := calendar.WeekStartOf(snap.Now)
	lastWeekStart := thisWeekStart.AddDate(0, 0, -7)
	priorWeekStart := thisWeekStart.AddDate(0, 0, -14)

	var lastWeek, priorWeek int
	for _, date := range snap.CorrectiveDates {
		switch {
		case date.Before(priorWeekStart) || !date.Before(thisWeekStart):
		case date.Before(lastWeekStart):
			priorWeek++
		default:
			lastWeek++
		}
	}
	if priorWeek == 0 || lastWeek >= priorWeek {
		return nil
	}

	return &Insight{
		ID:          d.ID(),
		Category:    CategoryConsistency,
		Priority:    3,
		Title:       "Corrective work dropping off",
		Body:        fmt.Sprintf("You did %d corrective sessions last week, down from %d the week before.", lastWeek, priorWeek),
		AccentColor: accentAmber,
		Dismissible: true,
	}
}

type correctiveStaleDetector struct {
	thresholds Thresholds
}

func (d correctiveStaleDetector) ID() string { return "corrective-stale" }

func (d correctiveStaleDetector) Evaluate(snap Snapshot) *Insight {
	if len(snap.CorrectiveDates) == 0 {
		return nil
	}

	last := snap.CorrectiveDates[0]
	for _, date := range snap.CorrectiveDates {
		if date.After(last) {
			last = date
		}
	}
	daysSince := int(math.Round(calendar.DayOf(snap.Now).Sub(calendar.DayOf(last)).Hours() / 24))
	if daysSince < d.thresholds.CorrectiveStaleDays {
		return nil
	}

	return &Insight{
		ID:          d.ID(),
		Category:    CategoryConsistency,
		Priority:    2,
		Title:       "Time for corrective work",
		Body:        fmt.Sprintf("It's been %d days since your last corrective session.", daysSince),
		AccentColor: accentAmber,
		Dismissible: true,
	}
}

type postureQualityDetector struct {
	thresholds Thresholds
}

func (d postureQualityDetector) ID() string { return "posture-quality" }

func (d postureQualityDetector) Evaluate(snap Snapshot) *Insight {
	if len(snap.PostureSessions) < d.thresholds.PostureQualityWindow {
		return nil
	}

	sessions := make([]posture.Session, len(snap.PostureSessions))
	copy(sessions, snap.PostureSessions)
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})
	avg := posture.AverageGoodPct(sessions[:d.thresholds.PostureQualityWindow])

	switch {
	case avg >= d.thresholds.PostureQualityGoodPct:
		return &Insight{
			ID:          d.ID(),
			Category:    CategoryPosture,
			Priority:    4,
			Title:       "Great posture lately",
			Body:        fmt.Sprintf("You kept good posture %.0f%% of the time over your last %d sessions.", avg, d.thresholds.PostureQualityWindow),
			AccentColor: accentGreen,
			Route:       "/posture",
			Dismissible: true,
		}
	case avg < d.thresholds.PostureQualityLowPct:
		return &Insight{
			ID:          d.ID(),
			Category:    CategoryPosture,
			Priority:    2,
			Title:       "Posture needs attention",
			Body:        fmt.Sprintf("Good posture only %.0f%% of the time over your last %d sessions.", avg, d.thresholds.PostureQualityWindow),
			AccentColor: accentAmber,
			Route:       "/posture",
			Dismissible: true,
		}
	default:
		return nil
	}
}

type weekdayPatternDetector struct {
	thresholds Thresholds
}

func (d weekdayPatternDetector) ID() string { return "weekday-pattern" }

func (d weekdayPatternDetector) Evaluate(snap Snapshot) *Insight {
	if len(snap.Workouts) < d.thresholds.WeekdayMinWorkouts {
		return nil
	}

	counts := make(map[time.Weekday]int)
	for _, w := range snap.Workouts {
		counts[w.PerformedAt.Weekday()]++
	}
	if len(counts) < d.thresholds.WeekdayMinDistinct {
		return nil
	}

	var best, worst time.Weekday
	bestCount, worstCount := -1, math.MaxInt
	for day := time.Sunday; day <= time.Saturday; day++ {
		count, ok := counts[day]
		if !ok {
			continue
		}
		if count > bestCount {
			best, bestCount = day, count
		}
		if count < worstCount {
			worst, worstCount = day, count
		}
	}
	if bestCount-worstCount < d.thresholds.WeekdayMinGap {
		return nil
	}

	return &Insight{
		ID:          d.ID(),
		Category:    CategoryTraining,
		Priority:    4,
		Title:       fmt.Sprintf("%s is your day", best),
		Body:        fmt.Sprintf("You train most on %ss (%d workouts) and least on %ss (%d). Worth planning around.", best, bestCount, worst, worstCount),
		AccentColor: accentBlue,
		Dismissible: true,
	}
}

type activityDaysMilestoneDetector struct{}

func (d activityDaysMilestoneDetector) ID() string { return "activity-days-milestone" }

func (d activityDaysMilestoneDetector) Evaluate(snap Snapshot) *Insight {
	for _, milestone := range activityDayMilestones {
		if snap.Streak.TotalActivityDays != milestone {
			continue
		}
		return &Insight{
			ID:          fmt.Sprintf("%s-%d", d.ID(), milestone),
			Category:    CategoryMilestone,
			Priority:    3,
			Title:       fmt.Sprintf("%d active days", milestone),
			Body:        fmt.Sprintf("You've now been active on %d separate days. That adds up.", milestone),
			AccentColor: accentGreen,
			Route:       "/streak",
			Dismissible: true,
		}
	}
	return nil
}
