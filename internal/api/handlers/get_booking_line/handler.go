package get_booking_line

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/booking_lines"
)

const (
	msgInvalidLineID = "некорректный ID строки расписания"
	msgNotFound      = "строка расписания не найдена"
	msgMissingUserID = "отсутствует ID пользователя"
)

type Handler struct {
	service BookingLineService
	logger  Logger
}

func NewHandler(service BookingLineService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-lines/{lineId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lineID, err := strconv.ParseInt(mux.Vars(r)["lineId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /booking-lines/{id} - Invalid line ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLineID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /booking-lines/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	line, err := h.service.GetByID(r.Context(), lineID, userID)
	if err != nil {
		switch {
		case errors.Is(err, booking_lines.ErrBookingLineNotFound):
			h.logger.Warn("GET /booking-lines/{id} - Line not found: line_id=%d", lineID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /booking-lines/{id} - Failed to get line: line_id=%d, error=%v", lineID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, line)
}
