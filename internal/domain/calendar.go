package domain

import "time"

// MonthOption one entry of the month selector
type MonthOption struct {
	Token string // "01".."12"
	Month time.Month
}

// CalendarContext is the picker state a set of options is computed for.
// It has no lifecycle of its own: it is rebuilt on every interaction.
type CalendarContext struct {
	ReferenceNow  time.Time
	SelectedYear  *int
	SelectedMonth *string // two-digit token, nil until chosen
	SelectedDay   *string // two-digit token, nil until chosen
}

// CalendarBounds legal option values for a date-time picker
type CalendarBounds struct {
	Years   []int
	Months  []MonthOption
	Days    []string
	Hours   []string
	Minutes []string

	// SelectedDay is the previous day selection clamped to the month length
	SelectedDay *string
}
