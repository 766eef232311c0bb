package booking_lines

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// BookingLineRepository интерфейс репозитория строк расписания
type BookingLineRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingLine, error)
	GetByPractitioner(ctx context.Context, practitionerID int64, includeCancelled bool, limit uint64) ([]domain.BookingLine, error)
	Cancel(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
