package badges

import (
	"time"

	"github.com/2beens/mobilitystats/internal/mobility/goals"
)

// Type identifies a badge. A badge is earned at most once, the repo keeps
// one row per type.
type Type string

const (
	TypeFirstGoal   Type = "first-goal"
	TypeFiveGoals   Type = "five-goals"
	TypePerfectWeek Type = "perfect-week"
)

func (t Type) String() string {
	return string(t)
}

// TypeForGoal is the badge earned for completing the first goal of the
// given goal type.
func TypeForGoal(goalType goals.Type) Type {
	return Type("goal-type-" + goalType.String())
}

type Badge struct {
	ID       int       `json:"id"`
	Type     Type      `json:"type"`
	EarnedAt time.Time `json:"earnedAt"`
}

// CatalogEntry describes one earnable badge, the phone app renders the full
// catalog with earned ones highlighted.
type CatalogEntry struct {
	Type        Type   `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func Catalog() []CatalogEntry {
	catalog := []CatalogEntry{
		{
			Type:        TypeFirstGoal,
			Name:        "First Goal Down",
			Description: "Complete your first goal",
		},
		{
			Type:        TypeFiveGoals,
			Name:        "High Five",
			Description: "Complete five goals",
		},
		{
			Type:        TypePerfectWeek,
			Name:        "Perfect Week",
			Description: "Fully reach a workout consistency goal",
		},
	}
	for _, goalType := range []goals.Type{
		goals.TypePainReduction,
		goals.TypeSymmetryImprovement,
		goals.TypePostureScore,
		goals.TypeWorkoutConsistency,
		goals.TypeWorkoutStreak,
		goals.TypeCustom,
	} {
		catalog = append(catalog, CatalogEntry{
			Type:        TypeForGoal(goalType),
			Name:        "Goal Getter: " + goalType.String(),
			Description: "Complete a " + goalType.String() + " goal",
		})
	}
	return catalog
}
