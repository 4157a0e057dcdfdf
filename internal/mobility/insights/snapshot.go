package insights

import (
	"context"
	"sync"
	"time"

	"github.com/2beens/mobilitystats/internal/mobility/checkins"
	"github.com/2beens/mobilitystats/internal/mobility/posture"
	"github.com/2beens/mobilitystats/internal/mobility/streaks"
	"github.com/2beens/mobilitystats/internal/mobility/workouts"
	"github.com/2beens/mobilitystats/internal/telemetry/tracing"

	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=snapshot_mocks_test.go -package=insights_test

type analyzerSource interface {
	WeeklyVolume(ctx context.Context) ([]workouts.WeeklyVolumePoint, error)
	Asymmetry(ctx context.Context) (*workouts.AsymmetrySummary, error)
}

type workoutsSource interface {
	ListAll(ctx context.Context, params workouts.ListParams) ([]workouts.Workout, error)
}

type checkinsSource interface {
	ListAll(ctx context.Context, params checkins.EntryParams) ([]checkins.Entry, error)
}

type postureSource interface {
	ListAll(ctx context.Context, params posture.SessionParams) ([]posture.Session, error)
}

// Snapshot is the single atomic input every detector runs against. All
// collections are already materialized; an unavailable source simply leaves
// its part empty and the detectors fall back to their no-data behavior.
type Snapshot struct {
	Now             time.Time
	Streak          streaks.Stats
	WeeklyVolume    []workouts.WeeklyVolumePoint
	Asymmetry       *workouts.AsymmetrySummary
	Workouts        []workouts.Workout
	PainEntries     []checkins.Entry
	PostureScores   []checkins.Entry
	PainBefore      []checkins.Entry
	PainAfter       []checkins.Entry
	PostureSessions []posture.Session
	CorrectiveDates []time.Time
}

// SnapshotBuilder fans out the repo reads and assembles one Snapshot. Fetch
// errors are collected and returned alongside the (partial) snapshot, they
// never abort the build.
type SnapshotBuilder struct {
	analyzer analyzerSource
	workouts workoutsSource
	checkins checkinsSource
	posture  postureSource
}

func NewSnapshotBuilder(
	analyzer analyzerSource,
	workoutsRepo workoutsSource,
	checkinsRepo checkinsSource,
	postureRepo postureSource,
) *SnapshotBuilder {
	return &SnapshotBuilder{
		analyzer: analyzer,
		workouts: workoutsRepo,
		checkins: checkinsRepo,
		posture:  postureRepo,
	}
}

func (b *SnapshotBuilder) Build(ctx context.Context) (_ Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "insights.snapshot.build")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	snap := Snapshot{Now: time.Now()}

	var (
		wg     sync.WaitGroup
		errMux sync.Mutex
	)
	fail := func(fetchErr error) {
		errMux.Lock()
		defer errMux.Unlock()
		err = multierr.Append(err, fetchErr)
	}

	wg.Add(5)
	go func() {
		defer wg.Done()
		workoutList, fetchErr := b.workouts.ListAll(ctx, workouts.ListParams{})
		if fetchErr != nil {
			fail(fetchErr)
			return
		}
		snap.Workouts = workoutList
	}()
	go func() {
		defer wg.Done()
		weekly, fetchErr := b.analyzer.WeeklyVolume(ctx)
		if fetchErr != nil {
			fail(fetchErr)
			return
		}
		snap.WeeklyVolume = weekly
	}()
	go func() {
		defer wg.Done()
		asymmetry, fetchErr := b.analyzer.Asymmetry(ctx)
		if fetchErr != nil {
			fail(fetchErr)
			return
		}
		snap.Asymmetry = asymmetry
	}()
	go func() {
		defer wg.Done()
		entries, fetchErr := b.checkins.ListAll(ctx, checkins.EntryParams{})
		if fetchErr != nil {
			fail(fetchErr)
			return
		}
		for _, entry := range entries {
			switch entry.Kind {
			case checkins.KindPain:
				snap.PainEntries = append(snap.PainEntries, entry)
			case checkins.KindPostureScore:
				snap.PostureScores = append(snap.PostureScores, entry)
			case checkins.KindPainBeforeWorkout:
				snap.PainBefore = append(snap.PainBefore, entry)
			case checkins.KindPainAfterWorkout:
				snap.PainAfter = append(snap.PainAfter, entry)
			}
		}
	}()
	go func() {
		defer wg.Done()
		sessions, fetchErr := b.posture.ListAll(ctx, posture.SessionParams{})
		if fetchErr != nil {
			fail(fetchErr)
			return
		}
		snap.PostureSessions = sessions
	}()
	wg.Wait()

	snap.Streak = streaks.Compute(
		streaks.RecordsFrom(snap.Workouts, snap.PostureSessions),
		snap.Now,
	)
	for _, w := range snap.Workouts {
		if w.Kind == streaks.ActivityKindCorrective.String() {
			snap.CorrectiveDates = append(snap.CorrectiveDates, w.PerformedAt)
		}
	}

	return snap, err
}
