package cancel_booking_line

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/booking_lines/models"
)

type BookingLineService interface {
	Cancel(ctx context.Context, lineID int64, req *models.CancelRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
