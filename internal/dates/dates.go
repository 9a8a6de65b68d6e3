// Package dates provides the pure date-bucketing functions shared by the
// calendar and day-detail views. All grouping uses the local calendar date
// of an instant; deriving keys in UTC would shift tasks across midnight for
// users east or west of UTC, so every consumer goes through Key.
package dates

import (
	"fmt"
	"time"

	"github.com/daylist-app/daylist/pkg/types"
)

// KeyLayout is the calendar date key format, YYYY-MM-DD.
const KeyLayout = "2006-01-02"

// Key returns the local calendar date key for the given instant.
func Key(t time.Time) string {
	return t.Local().Format(KeyLayout)
}

// ParseKey parses a YYYY-MM-DD key into local midnight of that day.
// Returns types.ErrInvalidDateKey if the key is malformed or denotes an
// impossible date.
func ParseKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(KeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", types.ErrInvalidDateKey, key)
	}
	// time.Parse normalizes out-of-range components (2023-02-30 becomes
	// March 2); reject keys that do not round-trip.
	if Key(t) != key {
		return time.Time{}, fmt.Errorf("%w: %q", types.ErrInvalidDateKey, key)
	}
	return t, nil
}

// TasksOnDate returns the tasks whose creation instant falls on the given
// local calendar date key, preserving input order.
func TasksOnDate(tasks []*types.Task, key string) []*types.Task {
	var out []*types.Task
	for _, task := range tasks {
		if Key(task.CreatedAt) == key {
			out = append(out, task)
		}
	}
	return out
}

// DaysInMonth returns the number of days in the given Gregorian month.
// Day zero of the following month normalizes to the last day of this one,
// which handles leap years.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first day of the given month,
// used by calendar rendering for the leading offset.
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday()
}

// PrevMonth returns the year and month immediately before the given month.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

// NextMonth returns the year and month immediately after the given month.
func NextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}

// DayCell is one day of a month grid with its task counts.
type DayCell struct {
	Day       int    `json:"day"`       // Day of month, 1..DaysInMonth.
	Key       string `json:"date"`      // Calendar date key for the day.
	Total     int    `json:"total"`     // Tasks created on this day.
	Completed int    `json:"completed"` // Completed tasks among Total.
}

// MonthGrid returns one DayCell per calendar day of the given month, in day
// order. Leading blanks for the weekday offset are a rendering concern and
// are not included.
func MonthGrid(year int, month time.Month, tasks []*types.Task) []DayCell {
	days := DaysInMonth(year, month)
	cells := make([]DayCell, 0, days)
	for day := 1; day <= days; day++ {
		key := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		dayTasks := TasksOnDate(tasks, key)
		completed := 0
		for _, task := range dayTasks {
			if task.Completed {
				completed++
			}
		}
		cells = append(cells, DayCell{
			Day:       day,
			Key:       key,
			Total:     len(dayTasks),
			Completed: completed,
		})
	}
	return cells
}
