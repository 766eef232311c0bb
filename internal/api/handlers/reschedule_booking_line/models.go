package reschedule_booking_line

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/scheduling/slotcheck"
	rescheduleBookingLine "github.com/m04kA/SMC-ScheduleService/internal/usecase/reschedule_booking_line"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	ScheduledAt string `json:"scheduledAt,omitempty"`
	Day         string `json:"day,omitempty"`
	Month       string `json:"month,omitempty"`
	Year        string `json:"year,omitempty"`
	Hour        string `json:"hour,omitempty"`
	Minute      string `json:"minute,omitempty"`
}

// BookingLineResponse HTTP response model
type BookingLineResponse struct {
	ID             int64   `json:"id"`
	PractitionerID int64   `json:"practitionerId"`
	PatientID      int64   `json:"patientId"`
	ServiceID      int64   `json:"serviceId"`
	ScheduledAt    string  `json:"scheduledAt"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleRequest) ToUseCaseRequest(userID, lineID int64) *rescheduleBookingLine.Request {
	scheduledAt := r.ScheduledAt
	if scheduledAt == "" {
		scheduledAt = slotcheck.AssembleDateTime(r.Day, r.Month, r.Year, r.Hour, r.Minute)
	}

	return &rescheduleBookingLine.Request{
		UserID:      userID,
		LineID:      lineID,
		ScheduledAt: scheduledAt,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBookingLine.Response) *BookingLineResponse {
	return &BookingLineResponse{
		ID:             resp.ID,
		PractitionerID: resp.PractitionerID,
		PatientID:      resp.PatientID,
		ServiceID:      resp.ServiceID,
		ScheduledAt:    resp.ScheduledAt,
		Status:         resp.Status,
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
