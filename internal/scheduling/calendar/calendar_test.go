package calendar

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		month string
		year  string
		want  int
	}{
		{"02", "2024", 29},
		{"02", "2023", 28},
		{"02", "2000", 29},
		{"02", "1900", 28},
		{"01", "2023", 31},
		{"04", "2023", 30},
		{"06", "2023", 30},
		{"09", "2023", 30},
		{"11", "2023", 30},
		{"12", "2023", 31},
		{"", "2023", 31},
		{"13", "2023", 31},
		{"02", "", 28},
		{"02", "abc", 28},
	}

	for _, tt := range tests {
		t.Run(tt.month+"/"+tt.year, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysInMonth(tt.month, tt.year))
		})
	}
}

func TestAvailableMonths(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local)

	t.Run("current year excludes earlier months", func(t *testing.T) {
		months := slices.Collect(AvailableMonths(2025, now))
		require.Len(t, months, 10)
		assert.Equal(t, "03", months[0].Token)
		assert.Equal(t, time.March, months[0].Month)
		assert.Equal(t, "12", months[len(months)-1].Token)
	})

	t.Run("future year has all twelve", func(t *testing.T) {
		months := slices.Collect(AvailableMonths(2026, now))
		assert.Len(t, months, 12)
		assert.Equal(t, "01", months[0].Token)
	})

	t.Run("past year has none", func(t *testing.T) {
		assert.Empty(t, slices.Collect(AvailableMonths(2020, now)))
		assert.Empty(t, slices.Collect(AvailableMonths(2024, now)))
	})

	t.Run("sequence is restartable", func(t *testing.T) {
		seq := AvailableMonths(2025, now)
		assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
	})

	t.Run("early break stops iteration", func(t *testing.T) {
		count := 0
		for range AvailableMonths(2026, now) {
			count++
			if count == 2 {
				break
			}
		}
		assert.Equal(t, 2, count)
	})
}

func TestAvailableDays(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local)

	t.Run("current month excludes days before today", func(t *testing.T) {
		days := slices.Collect(AvailableDays("03", 2025, now))
		require.Len(t, days, 22)
		assert.Equal(t, "10", days[0])
		assert.Equal(t, "31", days[len(days)-1])
	})

	t.Run("future month has every day", func(t *testing.T) {
		days := slices.Collect(AvailableDays("04", 2025, now))
		require.Len(t, days, 30)
		assert.Equal(t, "01", days[0])
	})

	t.Run("same month of a future year has every day", func(t *testing.T) {
		assert.Len(t, slices.Collect(AvailableDays("03", 2026, now)), 31)
	})

	t.Run("leap february", func(t *testing.T) {
		days := slices.Collect(AvailableDays("02", 2028, now))
		assert.Equal(t, "29", days[len(days)-1])
	})

	t.Run("past month of current year has none", func(t *testing.T) {
		assert.Empty(t, slices.Collect(AvailableDays("02", 2025, now)))
		assert.Empty(t, slices.Collect(AvailableDays("01", 2025, now)))
	})

	t.Run("past year has none", func(t *testing.T) {
		assert.Empty(t, slices.Collect(AvailableDays("12", 2020, now)))
	})

	t.Run("unselected month is permissive", func(t *testing.T) {
		assert.Len(t, slices.Collect(AvailableDays("", 2025, now)), 31)
	})
}

func TestClampDay(t *testing.T) {
	assert.Equal(t, "30", ClampDay("31", "04", 2025))
	assert.Equal(t, "28", ClampDay("31", "02", 2023))
	assert.Equal(t, "29", ClampDay("30", "02", 2024))
	assert.Equal(t, "15", ClampDay("15", "02", 2023))
	assert.Equal(t, "05", ClampDay("5", "06", 2023))
	assert.Equal(t, "01", ClampDay("0", "06", 2023))
	assert.Equal(t, "", ClampDay("", "06", 2023))
}

func TestHoursAndMinutes(t *testing.T) {
	hours := slices.Collect(Hours())
	require.Len(t, hours, 24)
	assert.Equal(t, "00", hours[0])
	assert.Equal(t, "23", hours[23])

	minutes := slices.Collect(Minutes(15))
	assert.Equal(t, []string{"00", "15", "30", "45"}, minutes)

	assert.Len(t, slices.Collect(Minutes(0)), 60)
}

func TestAvailableYears(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local)
	assert.Equal(t, []int{2025, 2026, 2027}, slices.Collect(AvailableYears(now, 3)))
}

func TestBuild(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local)

	t.Run("defaults to the reference year", func(t *testing.T) {
		bounds := Build(domain.CalendarContext{ReferenceNow: now}, DefaultOptions())

		assert.Equal(t, 2025, bounds.Years[0])
		assert.Len(t, bounds.Years, domain.DefaultYearSpan)
		assert.Len(t, bounds.Months, 10)
		assert.Len(t, bounds.Days, 31)
		assert.Len(t, bounds.Hours, 24)
		assert.Len(t, bounds.Minutes, 12)
		assert.Nil(t, bounds.SelectedDay)
	})

	t.Run("clamps the selected day to the new month", func(t *testing.T) {
		bounds := Build(domain.CalendarContext{
			ReferenceNow:  now,
			SelectedYear:  ptr.Ptr(2025),
			SelectedMonth: ptr.Ptr("04"),
			SelectedDay:   ptr.Ptr("31"),
		}, DefaultOptions())

		require.NotNil(t, bounds.SelectedDay)
		assert.Equal(t, "30", *bounds.SelectedDay)
		assert.Len(t, bounds.Days, 30)
	})

	t.Run("current month starts today", func(t *testing.T) {
		bounds := Build(domain.CalendarContext{
			ReferenceNow:  now,
			SelectedYear:  ptr.Ptr(2025),
			SelectedMonth: ptr.Ptr("03"),
		}, DefaultOptions())

		assert.Equal(t, "10", bounds.Days[0])
	})

	t.Run("past year offers nothing", func(t *testing.T) {
		bounds := Build(domain.CalendarContext{
			ReferenceNow:  now,
			SelectedYear:  ptr.Ptr(2020),
			SelectedMonth: ptr.Ptr("05"),
		}, DefaultOptions())

		assert.NotNil(t, bounds.Months)
		assert.Empty(t, bounds.Months)
		assert.NotNil(t, bounds.Days)
		assert.Empty(t, bounds.Days)
	})
}
