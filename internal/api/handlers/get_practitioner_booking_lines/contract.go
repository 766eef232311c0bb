package get_practitioner_booking_lines

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/booking_lines/models"
)

type BookingLineService interface {
	ListByPractitioner(ctx context.Context, req *models.ListByPractitionerRequest) (*models.BookingLineListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
