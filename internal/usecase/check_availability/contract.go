package check_availability

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// BookingLineRepository интерфейс репозитория строк расписания
type BookingLineRepository interface {
	GetActive(ctx context.Context) ([]domain.BookingLine, error)
}

// Metrics бизнес-метрики
type Metrics interface {
	ObserveAvailability(available bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
