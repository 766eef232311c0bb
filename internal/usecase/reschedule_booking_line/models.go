package reschedule_booking_line

import "time"

// Request перенос строки расписания на новое время
type Request struct {
	UserID      int64
	LineID      int64
	ScheduledAt string
}

// Response строка расписания после переноса
type Response struct {
	ID             int64
	PractitionerID int64
	PatientID      int64
	ServiceID      int64
	ScheduledAt    string
	Status         string
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
