package create_booking_line

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/clinicregistry"
)

// BookingLineRepository интерфейс репозитория строк расписания
type BookingLineRepository interface {
	Create(ctx context.Context, line *domain.BookingLine) (*domain.BookingLine, error)
	GetActive(ctx context.Context) ([]domain.BookingLine, error)
}

// ClinicRegistryClient интерфейс клиента бэкенда клиники
type ClinicRegistryClient interface {
	GetPractitioner(ctx context.Context, id int64) (*clinicregistry.Practitioner, error)
	GetPatient(ctx context.Context, id int64) (*clinicregistry.Patient, error)
	GetService(ctx context.Context, id int64) (*clinicregistry.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики (допускается nil *metrics.Metrics)
type Metrics interface {
	ObserveSlotRejection(rule string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
