package domain

import "time"

// MinAppointmentSpacing is the minimum distance between two appointments
// of the same practitioner, applied symmetrically before and after.
const MinAppointmentSpacing = time.Hour

// Picker defaults
const (
	DefaultYearSpan      = 5  // years offered by the year selector, current included
	DefaultMinuteStep    = 5  // minute selector granularity
	MaxNotesLength       = 500
	MaxBookingLinesLimit = 1000
)

// Time format constants
const (
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)
