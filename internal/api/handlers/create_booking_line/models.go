package create_booking_line

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/scheduling/slotcheck"
	createBookingLine "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking_line"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// CreateBookingLineRequest HTTP request model.
// Дата-время передаётся либо целиком в scheduledAt, либо значениями пяти селекторов.
type CreateBookingLineRequest struct {
	PractitionerID types.FlexibleID `json:"practitionerId"`
	PatientID      types.FlexibleID `json:"patientId"`
	ServiceID      types.FlexibleID `json:"serviceId"`
	ScheduledAt    string           `json:"scheduledAt,omitempty"` // "2025-03-10 10:45"
	Day            string           `json:"day,omitempty"`
	Month          string           `json:"month,omitempty"`
	Year           string           `json:"year,omitempty"`
	Hour           string           `json:"hour,omitempty"`
	Minute         string           `json:"minute,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

// BookingLineResponse HTTP response model
type BookingLineResponse struct {
	ID               int64   `json:"id"`
	PractitionerID   int64   `json:"practitionerId"`
	PatientID        int64   `json:"patientId"`
	ServiceID        int64   `json:"serviceId"`
	ScheduledAt      string  `json:"scheduledAt"`
	Status           string  `json:"status"`
	PractitionerName string  `json:"practitionerName"`
	PatientName      string  `json:"patientName"`
	ServiceName      string  `json:"serviceName"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingLineRequest) ToUseCaseRequest(userID int64) *createBookingLine.Request {
	scheduledAt := r.ScheduledAt
	if scheduledAt == "" {
		scheduledAt = slotcheck.AssembleDateTime(r.Day, r.Month, r.Year, r.Hour, r.Minute)
	}

	return &createBookingLine.Request{
		UserID:         userID,
		PractitionerID: r.PractitionerID,
		PatientID:      r.PatientID,
		ServiceID:      r.ServiceID,
		ScheduledAt:    scheduledAt,
		Notes:          r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBookingLine.Response) *BookingLineResponse {
	return &BookingLineResponse{
		ID:               resp.ID,
		PractitionerID:   resp.PractitionerID,
		PatientID:        resp.PatientID,
		ServiceID:        resp.ServiceID,
		ScheduledAt:      resp.ScheduledAt,
		Status:           resp.Status,
		PractitionerName: resp.PractitionerName,
		PatientName:      resp.PatientName,
		ServiceName:      resp.ServiceName,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
