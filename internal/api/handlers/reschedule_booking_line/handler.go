package reschedule_booking_line

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	rescheduleBookingLine "github.com/m04kA/SMC-ScheduleService/internal/usecase/reschedule_booking_line"
)

const (
	msgInvalidLineID      = "некорректный ID строки расписания"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "строка расписания не найдена"
	msgCannotReschedule   = "отменённую запись нельзя перенести"
	msgSlotContended      = "время одновременно занимают другие записи, повторите попытку"
)

type Handler struct {
	useCase RescheduleBookingLineUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingLineUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/booking-lines/{lineId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lineID, err := strconv.ParseInt(mux.Vars(r)["lineId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /booking-lines/{id}/schedule - Invalid line ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLineID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /booking-lines/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /booking-lines/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, lineID))
	if err != nil {
		if handlers.RespondRejection(w, err) {
			h.logger.Warn("PUT /booking-lines/{id}/schedule - Slot rejected: line_id=%d, reason=%v", lineID, err)
			return
		}

		switch {
		case errors.Is(err, rescheduleBookingLine.ErrBookingLineNotFound):
			h.logger.Warn("PUT /booking-lines/{id}/schedule - Line not found: line_id=%d", lineID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBookingLine.ErrCannotReschedule):
			h.logger.Warn("PUT /booking-lines/{id}/schedule - Line cancelled: line_id=%d", lineID)
			handlers.RespondBadRequest(w, msgCannotReschedule)

		case errors.Is(err, rescheduleBookingLine.ErrSlotContended):
			h.logger.Warn("PUT /booking-lines/{id}/schedule - Slot contended: line_id=%d", lineID)
			handlers.RespondConflict(w, msgSlotContended)

		default:
			h.logger.Error("PUT /booking-lines/{id}/schedule - Failed to reschedule: line_id=%d, error=%v", lineID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /booking-lines/{id}/schedule - Line rescheduled: line_id=%d, scheduled_at=%s, user_id=%d",
		lineID, result.ScheduledAt, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
