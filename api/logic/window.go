/* window.go
 * Contains the flag race time window checks. Races run at fixed UTC hours and
 * placements may only be recorded within the first minutes of a race hour;
 * this is a command routing policy, the record engine itself never looks at
 * wall-clock time.
 */

package logic

import "time"

// flagHoursUTC are the hours (UTC) a flag race starts.
var flagHoursUTC = []int{12, 19, 21, 22, 23}

// IsFlagHour reports whether the given UTC hour has a flag race.
func IsFlagHour(hour int) bool {
	for _, h := range flagHoursUTC {
		if h == hour {
			return true
		}
	}
	return false
}

// InSubmissionWindow reports whether t falls within the first limitMinutes of
// a flag race hour.
func InSubmissionWindow(t time.Time, limitMinutes int) bool {
	t = t.UTC()
	return IsFlagHour(t.Hour()) && t.Minute() < limitMinutes
}
