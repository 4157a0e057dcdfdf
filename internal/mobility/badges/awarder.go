package badges

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/mobilitystats/internal/mobility/goals"
	"github.com/2beens/mobilitystats/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=awarder_mocks_test.go -package=badges_test

type badgesRepo interface {
	Exists(ctx context.Context, badgeType Type) (bool, error)
	Insert(ctx context.Context, badge Badge) (*Badge, error)
	ListAll(ctx context.Context) ([]Badge, error)
}

// Awarder turns completed goals into badges. Evaluate is idempotent, each
// badge type is written once and re-running over the same goals awards
// nothing new.
type Awarder struct {
	repo badgesRepo
}

func NewAwarder(repo badgesRepo) *Awarder {
	return &Awarder{
		repo: repo,
	}
}

// earnedTypes derives all badge types the given completed goals satisfy.
func earnedTypes(completed []goals.Goal) []Type {
	if len(completed) == 0 {
		return nil
	}

	earned := []Type{TypeFirstGoal}
	if len(completed) >= 5 {
		earned = append(earned, TypeFiveGoals)
	}

	seenGoalTypes := make(map[goals.Type]bool)
	for _, goal := range completed {
		if seenGoalTypes[goal.Type] {
			continue
		}
		seenGoalTypes[goal.Type] = true
		earned = append(earned, TypeForGoal(goal.Type))
		if goal.Type == goals.TypeWorkoutConsistency {
			earned = append(earned, TypePerfectWeek)
		}
	}
	return earned
}

// Evaluate awards every badge the completed goals satisfy and returns only
// the newly awarded ones. The exists-then-insert sequence is not
// transactional, with a single phone app as the only writer that is fine.
func (a *Awarder) Evaluate(ctx context.Context, completed []goals.Goal) (_ []Badge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "badges.awarder.evaluate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("completedGoals", len(completed)))

	var awarded []Badge
	for _, badgeType := range earnedTypes(completed) {
		var exists bool
		if exists, err = a.repo.Exists(ctx, badgeType); err != nil {
			return awarded, err
		}
		if exists {
			continue
		}

		var badge *Badge
		badge, err = a.repo.Insert(ctx, Badge{
			Type:     badgeType,
			EarnedAt: time.Now(),
		})
		if errors.Is(err, ErrBadgeAlreadyEarned) {
			err = nil
			continue
		}
		if err != nil {
			return awarded, err
		}

		log.Debugf("badge awarded: %s", badge.Type)
		awarded = append(awarded, *badge)
	}

	return awarded, nil
}
