package calendar

import (
	"slices"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

// Options параметры построения селекторов
type Options struct {
	YearSpan   int
	MinuteStep int
}

// DefaultOptions значения по умолчанию
func DefaultOptions() Options {
	return Options{
		YearSpan:   domain.DefaultYearSpan,
		MinuteStep: domain.DefaultMinuteStep,
	}
}

// Build собирает все списки значений для одного состояния пикера.
// Все сравнения выполняются относительно одного ReferenceNow.
func Build(ctx domain.CalendarContext, opts Options) domain.CalendarBounds {
	now := ctx.ReferenceNow

	year := now.Year()
	if ctx.SelectedYear != nil {
		year = *ctx.SelectedYear
	}

	monthToken := ptr.Deref(ctx.SelectedMonth, "")

	bounds := domain.CalendarBounds{
		Years:   slices.Collect(AvailableYears(now, opts.YearSpan)),
		Months:  slices.AppendSeq(make([]domain.MonthOption, 0, 12), AvailableMonths(year, now)),
		Days:    slices.AppendSeq(make([]string, 0, 31), AvailableDays(monthToken, year, now)),
		Hours:   slices.Collect(Hours()),
		Minutes: slices.Collect(Minutes(opts.MinuteStep)),
	}

	if ctx.SelectedDay != nil {
		bounds.SelectedDay = ptr.Ptr(ClampDay(*ctx.SelectedDay, monthToken, year))
	}

	return bounds
}
