package workouts

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/2beens/mobilitystats/internal/mobility/calendar"
	"github.com/2beens/mobilitystats/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type WeeklyVolumePoint struct {
	WeekStart     time.Time `json:"weekStart"`
	TotalVolumeKg float64   `json:"totalVolumeKg"`
	TotalSets     int       `json:"totalSets"`
	TotalReps     int       `json:"totalReps"`
}

type WeightTrendPoint struct {
	Day         time.Time `json:"day"`
	MaxWeightKg float64   `json:"maxWeightKg"`
}

type WeeklySidePoint struct {
	WeekStart     time.Time `json:"weekStart"`
	LeftVolumeKg  float64   `json:"leftVolumeKg"`
	RightVolumeKg float64   `json:"rightVolumeKg"`
	ImbalancePct  int       `json:"imbalancePct"`
}

// DominantSide can be one of: balanced, left, right.
type DominantSide string

const (
	DominantSideBalanced DominantSide = "balanced"
	DominantSideLeft     DominantSide = "left"
	DominantSideRight    DominantSide = "right"
)

// TrendDirection can be one of: improving, worsening, stable.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendWorsening TrendDirection = "worsening"
	TrendStable    TrendDirection = "stable"
)

type AsymmetrySummary struct {
	CurrentImbalancePct int               `json:"currentImbalancePct"`
	DominantSide        DominantSide      `json:"dominantSide"`
	TrendDirection      TrendDirection    `json:"trendDirection"`
	WeeklyPoints        []WeeklySidePoint `json:"weeklyPoints"`
}

// TrendThresholds holds the tuning knobs for asymmetry classification.
// The values were chosen to avoid noise-driven trend flips, not derived
// from any model; keep them configurable.
type TrendThresholds struct {
	// BalancedMaxAbsPct: |imbalance| at or below this is "balanced"
	BalancedMaxAbsPct int
	// TrendMinDeltaPct: minimum change of avg |imbalance| between the two
	// 4-week windows to call the trend improving/worsening
	TrendMinDeltaPct float64
	// WindowWeeks: size of each comparison window
	WindowWeeks int
}

func DefaultTrendThresholds() TrendThresholds {
	return TrendThresholds{
		BalancedMaxAbsPct: 5,
		TrendMinDeltaPct:  3,
		WindowWeeks:       4,
	}
}

type Analyzer struct {
	repo       workoutsRepo
	thresholds TrendThresholds
}

func NewAnalyzer(repo workoutsRepo) *Analyzer {
	return &Analyzer{
		repo:       repo,
		thresholds: DefaultTrendThresholds(),
	}
}

// SetVolume is reps * weight with both clamped to >= 0; a set missing either
// field contributes 0, it never poisons a larger sum.
func SetVolume(set SetRecord) float64 {
	if set.Reps == nil || set.WeightKg == nil {
		return 0
	}
	reps := float64(*set.Reps)
	weight := *set.WeightKg
	if !isFinite(reps) || !isFinite(weight) {
		return 0
	}
	if reps < 0 {
		reps = 0
	}
	if weight < 0 {
		weight = 0
	}
	return reps * weight
}

// WeeklyVolume sums set volumes, set counts and reps per ISO week of the
// workout date, sorted by week ascending.
func (a *Analyzer) WeeklyVolume(ctx context.Context) (_ []WeeklyVolumePoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.mobility.weeklyVolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workouts, err := a.repo.ListAll(ctx, ListParams{})
	if err != nil {
		return nil, err
	}

	week2point := make(map[time.Time]*WeeklyVolumePoint)
	for _, w := range workouts {
		if w.PerformedAt.IsZero() {
			continue
		}
		weekStart := calendar.WeekStartOf(w.PerformedAt)
		point, ok := week2point[weekStart]
		if !ok {
			point = &WeeklyVolumePoint{WeekStart: weekStart}
			week2point[weekStart] = point
		}
		for _, ex := range w.Exercises {
			for _, set := range ex.Sets {
				point.TotalVolumeKg += SetVolume(set)
				point.TotalSets++
				if set.Reps != nil && *set.Reps > 0 {
					point.TotalReps += *set.Reps
				}
			}
		}
	}

	points := make([]WeeklyVolumePoint, 0, len(week2point))
	for _, point := range week2point {
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].WeekStart.Before(points[j].WeekStart)
	})

	span.SetAttributes(attribute.Int("weeks", len(points)))
	return points, nil
}

// ExerciseWeightTrend returns the max weight logged per calendar day for one
// exercise ("max per session" semantics), sorted chronologically.
func (a *Analyzer) ExerciseWeightTrend(ctx context.Context, exerciseID string) (_ []WeightTrendPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.mobility.weightTrend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	workouts, err := a.repo.ListAll(ctx, ListParams{ExerciseID: exerciseID})
	if err != nil {
		return nil, err
	}

	day2max := make(map[time.Time]float64)
	for _, w := range workouts {
		if w.PerformedAt.IsZero() {
			continue
		}
		day := calendar.DayOf(w.PerformedAt)
		for _, ex := range w.Exercises {
			if ex.ExerciseID != exerciseID {
				continue
			}
			for _, set := range ex.Sets {
				if set.WeightKg == nil || !isFinite(*set.WeightKg) || *set.WeightKg < 0 {
					continue
				}
				if *set.WeightKg > day2max[day] {
					day2max[day] = *set.WeightKg
				}
			}
		}
	}

	points := make([]WeightTrendPoint, 0, len(day2max))
	for day, maxWeight := range day2max {
		points = append(points, WeightTrendPoint{Day: day, MaxWeightKg: maxWeight})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Day.Before(points[j].Day)
	})
	return points, nil
}

// SideVolumeTrend returns weekly left/right volume sums for one exercise.
// Bilateral sets are excluded from the split.
func (a *Analyzer) SideVolumeTrend(ctx context.Context, exerciseID string) (_ []WeeklySidePoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.mobility.sideVolumeTrend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	workouts, err := a.repo.ListAll(ctx, ListParams{ExerciseID: exerciseID})
	if err != nil {
		return nil, err
	}
	return sideVolumePoints(workouts, exerciseID), nil
}

// AsymmetryTrend combines all side-specific exercises into one weekly
// left/right series.
func (a *Analyzer) AsymmetryTrend(ctx context.Context) (_ []WeeklySidePoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.mobility.asymmetryTrend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workouts, err := a.repo.ListAll(ctx, ListParams{})
	if err != nil {
		return nil, err
	}
	return sideVolumePoints(workouts, ""), nil
}

// Asymmetry classifies the current imbalance and its trend over the last
// weeks. With no side-specific data at all it returns a balanced, stable
// summary with no points.
func (a *Analyzer) Asymmetry(ctx context.Context) (_ *AsymmetrySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.mobility.asymmetry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	points, err := a.AsymmetryTrend(ctx)
	if err != nil {
		return nil, err
	}
	summary := SummarizeAsymmetry(points, a.thresholds)
	span.SetAttributes(attribute.Int("current_imbalance_pct", summary.CurrentImbalancePct))
	return summary, nil
}

// SummarizeAsymmetry is the pure classification core of Asymmetry, split out
// so the insight engine can reuse it on an already-built snapshot.
func SummarizeAsymmetry(points []WeeklySidePoint, thresholds TrendThresholds) *AsymmetrySummary {
	summary := &AsymmetrySummary{
		DominantSide:   DominantSideBalanced,
		TrendDirection: TrendStable,
		WeeklyPoints:   points,
	}
	if len(points) == 0 {
		summary.WeeklyPoints = []WeeklySidePoint{}
		return summary
	}

	current := points[len(points)-1]
	summary.CurrentImbalancePct = current.ImbalancePct

	switch {
	case abs(current.ImbalancePct) <= thresholds.BalancedMaxAbsPct:
		summary.DominantSide = DominantSideBalanced
	case current.ImbalancePct > 0:
		summary.DominantSide = DominantSideLeft
	default:
		summary.DominantSide = DominantSideRight
	}

	window := thresholds.WindowWeeks
	recentAvg := avgAbsImbalance(lastN(points, window))
	priorWindow := priorN(points, window)
	priorAvg := recentAvg // no prior data: no improvement signal implied
	if len(priorWindow) > 0 {
		priorAvg = avgAbsImbalance(priorWindow)
	}

	delta := priorAvg - recentAvg
	switch {
	case delta > thresholds.TrendMinDeltaPct:
		summary.TrendDirection = TrendImproving
	case delta < -thresholds.TrendMinDeltaPct:
		summary.TrendDirection = TrendWorsening
	default:
		summary.TrendDirection = TrendStable
	}

	return summary
}

// ImbalancePct is round(100 * (left-right) / (left+right)), 0 when there is
// no volume at all.
func ImbalancePct(left, right float64) int {
	total := left + right
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * (left - right) / total))
}

func sideVolumePoints(workouts []Workout, exerciseID string) []WeeklySidePoint {
	type sides struct {
		left  float64
		right float64
	}
	week2sides := make(map[time.Time]*sides)
	for _, w := range workouts {
		if w.PerformedAt.IsZero() {
			continue
		}
		weekStart := calendar.WeekStartOf(w.PerformedAt)
		for _, ex := range w.Exercises {
			if exerciseID != "" && ex.ExerciseID != exerciseID {
				continue
			}
			for _, set := range ex.Sets {
				if set.Side == nil || *set.Side == SideBilateral {
					continue
				}
				s, ok := week2sides[weekStart]
				if !ok {
					s = &sides{}
					week2sides[weekStart] = s
				}
				if *set.Side == SideLeft {
					s.left += SetVolume(set)
				} else {
					s.right += SetVolume(set)
				}
			}
		}
	}

	points := make([]WeeklySidePoint, 0, len(week2sides))
	for weekStart, s := range week2sides {
		points = append(points, WeeklySidePoint{
			WeekStart:     weekStart,
			LeftVolumeKg:  s.left,
			RightVolumeKg: s.right,
			ImbalancePct:  ImbalancePct(s.left, s.right),
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].WeekStart.Before(points[j].WeekStart)
	})
	return points
}

func lastN(points []WeeklySidePoint, n int) []WeeklySidePoint {
	if len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}

func priorN(points []WeeklySidePoint, n int) []WeeklySidePoint {
	if len(points) <= n {
		return nil
	}
	start := len(points) - 2*n
	if start < 0 {
		start = 0
	}
	return points[start : len(points)-n]
}

func avgAbsImbalance(points []WeeklySidePoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += math.Abs(float64(p.ImbalancePct))
	}
	return sum / float64(len(points))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
