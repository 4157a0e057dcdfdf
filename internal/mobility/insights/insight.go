package insights

// Category can be one of:
//   - pain
//   - posture
//   - symmetry
//   - streak
//   - consistency
//   - recovery
//   - milestone
//   - training
type Category string

const (
	CategoryPain        Category = "pain"
	CategoryPosture     Category = "posture"
	CategorySymmetry    Category = "symmetry"
	CategoryStreak      Category = "streak"
	CategoryConsistency Category = "consistency"
	CategoryRecovery    Category = "recovery"
	CategoryMilestone   Category = "milestone"
	CategoryTraining    Category = "training"
)

func (c Category) String() string {
	return string(c)
}

// Accent colors the phone app uses to tint insight cards.
const (
	accentRed   = "#e74c3c"
	accentAmber = "#f39c12"
	accentGreen = "#2ecc71"
	accentBlue  = "#3498db"
)

// Insight is one ranked observation derived from the user's aggregated data.
// Priority runs 1 (highest) to 5. The ID is stable per detector and context
// (never derived from transient values), so a dismissal recorded under it
// keeps matching across runs while the underlying numbers change.
type Insight struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Priority    int      `json:"priority"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	AccentColor string   `json:"accentColor"`
	Route       string   `json:"route,omitempty"`
	Dismissible bool     `json:"dismissible"`
}
