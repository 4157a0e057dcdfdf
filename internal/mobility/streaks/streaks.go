package streaks

import (
	"sort"
	"time"

	"github.com/2beens/mobilitystats/internal/mobility/calendar"
)

// ActivityKind can be one of:
//   - corrective
//   - gym
//   - cardio
//   - other
type ActivityKind string

const (
	ActivityKindCorrective ActivityKind = "corrective"
	ActivityKindGym        ActivityKind = "gym"
	ActivityKindCardio     ActivityKind = "cardio"
	ActivityKindOther      ActivityKind = "other"
)

func (ak ActivityKind) String() string {
	return string(ak)
}

func (ak ActivityKind) IsValid() bool {
	switch ak {
	case ActivityKindCorrective, ActivityKindGym, ActivityKindCardio, ActivityKindOther:
		return true
	default:
		return false
	}
}

type ActivityRecord struct {
	Date time.Time    `json:"date"`
	Kind ActivityKind `json:"kind"`
}

type Stats struct {
	CurrentStreak     int      `json:"currentStreak"`
	BestStreak        int      `json:"bestStreak"`
	TotalActivityDays int      `json:"totalActivityDays"`
	ActivityDates     []string `json:"activityDates"`
}

type DayCell struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type MonthHeatmap struct {
	Month string    `json:"month"`
	Days  []DayCell `json:"days"`
}

// Compute derives streak stats from the given activity records, relative to now.
// The current streak is 0 unless the most recent activity day is today or
// yesterday; one missed day breaks it, no grace days. The best streak is the
// longest run of consecutive days anywhere in history.
func Compute(records []ActivityRecord, now time.Time) Stats {
	uniqueDays := make(map[string]time.Time)
	for _, rec := range records {
		if rec.Date.IsZero() {
			continue
		}
		day := calendar.DayOf(rec.Date)
		uniqueDays[calendar.DateKey(day)] = day
	}

	if len(uniqueDays) == 0 {
		return Stats{ActivityDates: []string{}}
	}

	days := make([]time.Time, 0, len(uniqueDays))
	dateKeys := make([]string, 0, len(uniqueDays))
	for key, day := range uniqueDays {
		days = append(days, day)
		dateKeys = append(dateKeys, key)
	}
	// most recent first
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	sort.Strings(dateKeys)

	stats := Stats{
		TotalActivityDays: len(days),
		ActivityDates:     dateKeys,
	}

	today := calendar.DayOf(now)
	yesterday := today.AddDate(0, 0, -1)

	if days[0].Equal(today) || days[0].Equal(yesterday) {
		stats.CurrentStreak = 1
		for i := 1; i < len(days); i++ {
			if daysBetween(days[i], days[i-1]) != 1 {
				break
			}
			stats.CurrentStreak++
		}
	}

	run := 1
	stats.BestStreak = 1
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i], days[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > stats.BestStreak {
			stats.BestStreak = run
		}
	}

	if stats.CurrentStreak > stats.BestStreak {
		// cannot happen, current is one of the runs scanned above
		stats.BestStreak = stats.CurrentStreak
	}

	return stats
}

// Heatmap groups activity counts per day for the trailing number of months,
// most recent month first. Days without any activity get a zero-count cell so
// clients can render full month grids.
func Heatmap(records []ActivityRecord, months int, now time.Time) []MonthHeatmap {
	if months < 1 {
		months = 1
	}

	countPerDay := make(map[string]int)
	for _, rec := range records {
		if rec.Date.IsZero() {
			continue
		}
		countPerDay[calendar.DateKey(rec.Date)]++
	}

	today := calendar.DayOf(now)
	heatmaps := make([]MonthHeatmap, 0, months)
	for m := 0; m < months; m++ {
		monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).
			AddDate(0, -m, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		hm := MonthHeatmap{Month: calendar.MonthKey(monthStart)}
		for day := monthStart; day.Before(monthEnd) && !day.After(today); day = day.AddDate(0, 0, 1) {
			key := calendar.DateKey(day)
			hm.Days = append(hm.Days, DayCell{
				Date:  key,
				Count: countPerDay[key],
			})
		}
		heatmaps = append(heatmaps, hm)
	}

	return heatmaps
}

// daysBetween expects two local midnights; rounding absorbs DST offsets
// (a 23h or 25h gap is still one calendar day).
func daysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Round(24*time.Hour) / (24 * time.Hour))
}
