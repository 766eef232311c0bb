package cancel_booking_line

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/booking_lines"
	"github.com/m04kA/SMC-ScheduleService/internal/service/booking_lines/models"
)

const (
	msgInvalidLineID = "некорректный ID строки расписания"
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "строка расписания не найдена"
	msgCannotCancel  = "строка расписания уже отменена"
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

// Handle PATCH /api/v1/booking-lines/{lineId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lineID, err := strconv.ParseInt(mux.Vars(r)["lineId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /booking-lines/{id}/cancel - Invalid line ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLineID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /booking-lines/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.Cancel(r.Context(), lineID, &models.CancelRequest{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, booking_lines.ErrBookingLineNotFound):
			h.logger.Warn("PATCH /booking-lines/{id}/cancel - Line not found: line_id=%d", lineID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, booking_lines.ErrCannotCancel):
			h.logger.Warn("PATCH /booking-lines/{id}/cancel - Cannot cancel: line_id=%d", lineID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /booking-lines/{id}/cancel - Failed to cancel line: line_id=%d, error=%v", lineID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /booking-lines/{id}/cancel - Line cancelled: line_id=%d, user_id=%d", lineID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
