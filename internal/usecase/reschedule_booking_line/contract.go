package reschedule_booking_line

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// BookingLineRepository интерфейс репозитория строк расписания
type BookingLineRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingLine, error)
	GetActive(ctx context.Context) ([]domain.BookingLine, error)
	UpdateSchedule(ctx context.Context, id int64, scheduledAt string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики
type Metrics interface {
	ObserveSlotRejection(rule string)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
