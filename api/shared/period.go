/* period.go
 * Ranking period helpers. A period is a calendar week keyed by the date of the
 * UTC Monday it starts on, formatted as "2006-01-02". Weeks sort correctly as
 * plain strings, which the store and the monthly aggregation rely on.
 */

package shared

import "time"

const WeekKeyLayout = "2006-01-02"

// WeekStart returns the Monday 00:00 UTC that begins the week containing t.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	// time.Weekday has Sunday == 0, shift so Monday == 0
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -offset)
}

// WeekKey returns the period key for the week containing t.
func WeekKey(t time.Time) string {
	return WeekStart(t).Format(WeekKeyLayout)
}

// MonthWeekKeys returns the keys of every week whose Monday falls in the
// calendar month containing t. A week belongs to the month its Monday starts
// in, so a week spanning a month boundary counts towards the earlier month.
func MonthWeekKeys(t time.Time) []string {
	t = t.UTC()
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)

	// First Monday of the month
	monday := WeekStart(first)
	if monday.Before(first) {
		monday = monday.AddDate(0, 0, 7)
	}

	var keys []string
	for monday.Month() == t.Month() {
		keys = append(keys, monday.Format(WeekKeyLayout))
		monday = monday.AddDate(0, 0, 7)
	}
	return keys
}

// MonthLabel returns the human readable month name for stats titles, e.g. "September 2026".
func MonthLabel(t time.Time) string {
	return t.UTC().Format("January 2006")
}
