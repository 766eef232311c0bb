package get_calendar_bounds

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request текущее состояние пикера; nil означает "ещё не выбрано"
type Request struct {
	Year  *int
	Month *string
	Day   *string
}

// Response допустимые значения селекторов
type Response struct {
	ReferenceNow time.Time
	Bounds       domain.CalendarBounds
}
