package daterange

import (
	"iter"
	"time"
)

// Leave intervals are closed calendar-date ranges. All helpers treat their
// inputs as dates, ignoring any time-of-day component.

// DayOfWeek returns the weekday of t as 0..6, with 0 being Sunday.
func DayOfWeek(t time.Time) int {
	return int(t.Weekday())
}

// IsNonWorkingDay reports whether t falls on the non-working weekday (Sunday).
func IsNonWorkingDay(t time.Time) bool {
	return t.Weekday() == time.Sunday
}

// Overlaps reports whether the closed intervals [aStart, aEnd] and
// [bStart, bEnd] share at least one calendar date. Touching boundaries count.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	aStart, aEnd = Normalize(aStart), Normalize(aEnd)
	bStart, bEnd = Normalize(bStart), Normalize(bEnd)
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// Normalize truncates t to midnight UTC so values compare as calendar dates.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Each yields every date from start through end inclusive, ascending.
// The sequence is a pure function of its inputs and can be ranged over
// any number of times. An inverted range yields nothing.
func Each(start, end time.Time) iter.Seq[time.Time] {
	first, last := Normalize(start), Normalize(end)
	return func(yield func(time.Time) bool) {
		for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// WorkingDays counts the dates in [start, end] that are not the non-working day.
func WorkingDays(start, end time.Time) int {
	count := 0
	for d := range Each(start, end) {
		if !IsNonWorkingDay(d) {
			count++
		}
	}
	return count
}
