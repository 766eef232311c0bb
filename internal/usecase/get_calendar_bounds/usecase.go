package get_calendar_bounds

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduling/calendar"
)

// UseCase вычисляет границы пикера даты-времени
type UseCase struct {
	options      calendar.Options
	timeProvider TimeProvider
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(options calendar.Options) *UseCase {
	return &UseCase{
		options:      options,
		timeProvider: &RealTimeProvider{},
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute строит списки значений для одного состояния пикера
func (uc *UseCase) Execute(_ context.Context, req *Request) *Response {
	now := uc.timeProvider.Now()

	return &Response{
		ReferenceNow: now,
		Bounds: calendar.Build(domain.CalendarContext{
			ReferenceNow:  now,
			SelectedYear:  req.Year,
			SelectedMonth: req.Month,
			SelectedDay:   req.Day,
		}, uc.options),
	}
}
