package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// BookingLineStatus represents the status of a booking line
type BookingLineStatus string

const (
	StatusScheduled BookingLineStatus = "scheduled"
	StatusCancelled BookingLineStatus = "cancelled"
)

// BookingLine is one scheduled appointment: a practitioner, a patient,
// a service and a local wall-clock instant.
type BookingLine struct {
	ID             int64
	PractitionerID int64
	PatientID      int64
	ServiceID      int64
	// ScheduledAt is kept as the raw text received from the clinic backend.
	// Legacy rows may hold values that do not parse; see Instant.
	ScheduledAt string
	Status      BookingLineStatus
	Notes       *string

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Instant returns the normalized scheduled moment (NoInstant if it does not parse)
func (l *BookingLine) Instant() types.Instant {
	return types.ParseInstant(l.ScheduledAt)
}

// IsActive returns true if the line still occupies the practitioner's time
func (l *BookingLine) IsActive() bool {
	return l.Status != StatusCancelled
}

// CanBeRescheduled returns true if the line can be moved to another time
func (l *BookingLine) CanBeRescheduled() bool {
	return l.Status == StatusScheduled
}

// CanBeCancelled returns true if the line can be cancelled
func (l *BookingLine) CanBeCancelled() bool {
	return l.Status == StatusScheduled
}

// CandidateSlot is the slot under evaluation
type CandidateSlot struct {
	PractitionerID types.FlexibleID
	ProposedAt     string
	ExcludeLineID  *int64 // the line being edited, never conflicts with itself
}
