package get_calendar_bounds

import (
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

type Handler struct {
	useCase GetCalendarBoundsUseCase
}

func NewHandler(useCase GetCalendarBoundsUseCase) *Handler {
	return &Handler{useCase: useCase}
}

// Handle GET /api/v1/calendar/bounds?year=&month=&day=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := ToUseCaseRequest(query.Get("year"), query.Get("month"), query.Get("day"))

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(h.useCase.Execute(r.Context(), req)))
}
