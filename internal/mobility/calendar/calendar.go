package calendar

import "time"

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// ParseDate accepts either a date-only string (interpreted at local midnight)
// or a full RFC3339 timestamp. Returns false for anything unparseable, so
// aggregators can skip bad rows instead of aborting a whole batch.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(dateLayout, s, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// WeekStartOf returns the Monday at 00:00 of the ISO week containing t,
// in t's location. Go weekdays are Sunday=0..Saturday=6, so the offset
// back to Monday is (weekday+6) mod 7.
func WeekStartOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayOf truncates t to its calendar day at 00:00 in t's location.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DateKey formats t as YYYY-MM-DD. Lexicographic order of these keys
// equals chronological order, so they double as stable sort keys.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// MonthKey formats t as YYYY-MM, used for grouping heatmap cells.
func MonthKey(t time.Time) string {
	return t.Format(monthLayout)
}
