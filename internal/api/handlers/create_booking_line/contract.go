package create_booking_line

import (
	"context"

	createBookingLine "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking_line"
)

type CreateBookingLineUseCase interface {
	Execute(ctx context.Context, req *createBookingLine.Request) (*createBookingLine.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
