package get_calendar_bounds

import (
	"context"

	getCalendarBounds "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_calendar_bounds"
)

type GetCalendarBoundsUseCase interface {
	Execute(ctx context.Context, req *getCalendarBounds.Request) *getCalendarBounds.Response
}
