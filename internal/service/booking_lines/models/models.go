package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// DefaultListLimit размер списка по умолчанию
const DefaultListLimit = 100

// ListByPractitionerRequest запрос на получение строк специалиста
type ListByPractitionerRequest struct {
	UserID           int64  `json:"userId"`
	PractitionerID   int64  `json:"practitionerId"`
	IncludeCancelled bool   `json:"includeCancelled,omitempty"`
	Limit            uint64 `json:"limit,omitempty"` // 0 означает DefaultListLimit
}

// CancelRequest запрос на отмену строки
type CancelRequest struct {
	UserID int64 `json:"userId"`
}

// BookingLineResponse строка расписания
type BookingLineResponse struct {
	ID             int64   `json:"id"`
	PractitionerID int64   `json:"practitionerId"`
	PatientID      int64   `json:"patientId"`
	ServiceID      int64   `json:"serviceId"`
	ScheduledAt    string  `json:"scheduledAt"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
	CancelledAt    *string `json:"cancelledAt,omitempty"` // RFC 3339

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingLineListResponse список строк расписания
type BookingLineListResponse struct {
	BookingLines []BookingLineResponse `json:"bookingLines"`
}

// FromDomainBookingLine конвертирует domain модель в DTO
func FromDomainBookingLine(l *domain.BookingLine) *BookingLineResponse {
	if l == nil {
		return nil
	}

	resp := &BookingLineResponse{
		ID:             l.ID,
		PractitionerID: l.PractitionerID,
		PatientID:      l.PatientID,
		ServiceID:      l.ServiceID,
		ScheduledAt:    l.ScheduledAt,
		Status:         string(l.Status),
		Notes:          l.Notes,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}

	if l.CancelledAt != nil {
		cancelled := l.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// FromDomainBookingLineList конвертирует список domain моделей в DTO
func FromDomainBookingLineList(lines []domain.BookingLine) *BookingLineListResponse {
	resp := &BookingLineListResponse{
		BookingLines: make([]BookingLineResponse, 0, len(lines)),
	}

	for i := range lines {
		resp.BookingLines = append(resp.BookingLines, *FromDomainBookingLine(&lines[i]))
	}

	return resp
}
