package reschedule_booking_line

import (
	"context"

	rescheduleBookingLine "github.com/m04kA/SMC-ScheduleService/internal/usecase/reschedule_booking_line"
)

type RescheduleBookingLineUseCase interface {
	Execute(ctx context.Context, req *rescheduleBookingLine.Request) (*rescheduleBookingLine.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
