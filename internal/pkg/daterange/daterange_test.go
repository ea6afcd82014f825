package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayOfWeek(t *testing.T) {
	// 2024-03-03 is a Sunday
	assert.Equal(t, 0, DayOfWeek(date(2024, 3, 3)))
	assert.Equal(t, 1, DayOfWeek(date(2024, 3, 4)))
	assert.Equal(t, 6, DayOfWeek(date(2024, 3, 9)))
}

func TestIsNonWorkingDay(t *testing.T) {
	assert.True(t, IsNonWorkingDay(date(2024, 3, 3)))
	assert.False(t, IsNonWorkingDay(date(2024, 3, 4)))
	assert.False(t, IsNonWorkingDay(date(2024, 3, 9))) // Saturday is a working day
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{
			name:   "fully contained",
			aStart: date(2024, 1, 1), aEnd: date(2024, 1, 10),
			bStart: date(2024, 1, 3), bEnd: date(2024, 1, 5),
			want: true,
		},
		{
			name:   "shared boundary date counts",
			aStart: date(2024, 1, 1), aEnd: date(2024, 1, 5),
			bStart: date(2024, 1, 5), bEnd: date(2024, 1, 10),
			want: true,
		},
		{
			name:   "adjacent but disjoint",
			aStart: date(2024, 1, 1), aEnd: date(2024, 1, 5),
			bStart: date(2024, 1, 6), bEnd: date(2024, 1, 10),
			want: false,
		},
		{
			name:   "single day equals single day",
			aStart: date(2024, 1, 5), aEnd: date(2024, 1, 5),
			bStart: date(2024, 1, 5), bEnd: date(2024, 1, 5),
			want: true,
		},
		{
			name:   "entirely before",
			aStart: date(2023, 12, 1), aEnd: date(2023, 12, 31),
			bStart: date(2024, 1, 1), bEnd: date(2024, 1, 10),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// symmetric
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestOverlapsIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2024, 1, 5, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, 1, 5, 0, 1, 0, 0, time.UTC)
	assert.True(t, Overlaps(a, a, b, b))
}

func TestEach(t *testing.T) {
	var got []time.Time
	for d := range Each(date(2024, 3, 4), date(2024, 3, 6)) {
		got = append(got, d)
	}
	assert.Equal(t, []time.Time{
		date(2024, 3, 4),
		date(2024, 3, 5),
		date(2024, 3, 6),
	}, got)
}

func TestEachSingleDay(t *testing.T) {
	var got []time.Time
	for d := range Each(date(2024, 3, 4), date(2024, 3, 4)) {
		got = append(got, d)
	}
	assert.Len(t, got, 1)
}

func TestEachInvertedRangeYieldsNothing(t *testing.T) {
	for range Each(date(2024, 3, 6), date(2024, 3, 4)) {
		t.Fatal("inverted range must not yield")
	}
}

func TestEachIsRestartable(t *testing.T) {
	seq := Each(date(2024, 3, 4), date(2024, 3, 6))

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, 3, first)
	assert.Equal(t, 3, second)
}

func TestWorkingDays(t *testing.T) {
	// Fri 2024-03-01 .. Thu 2024-03-07 spans one Sunday (03-03)
	assert.Equal(t, 6, WorkingDays(date(2024, 3, 1), date(2024, 3, 7)))
	assert.Equal(t, 0, WorkingDays(date(2024, 3, 3), date(2024, 3, 3)))
	assert.Equal(t, 1, WorkingDays(date(2024, 3, 4), date(2024, 3, 4)))
}
