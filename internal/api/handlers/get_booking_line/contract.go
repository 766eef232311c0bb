package get_booking_line

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/booking_lines/models"
)

type BookingLineService interface {
	GetByID(ctx context.Context, id int64, userID int64) (*models.BookingLineResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
