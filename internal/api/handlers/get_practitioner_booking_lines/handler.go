package get_practitioner_booking_lines

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
	msgInvalidPractitionerID = "некорректный ID специалиста"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgInvalidParams         = "некорректные параметры запроса"
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

// Handle GET /api/v1/practitioners/{practitionerId}/booking-lines
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	practitionerID, err := strconv.ParseInt(mux.Vars(r)["practitionerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /practitioners/{id}/booking-lines - Invalid practitioner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPractitionerID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /practitioners/{id}/booking-lines - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(practitionerID, userID, query.Get("includeCancelled"), query.Get("limit"))
	if err != nil {
		h.logger.Warn("GET /practitioners/{id}/booking-lines - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListByPractitioner(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, booking_lines.ErrInvalidInput):
			h.logger.Warn("GET /practitioners/{id}/booking-lines - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /practitioners/{id}/booking-lines - Failed to list lines: practitioner_id=%d, error=%v",
				practitionerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /practitioners/{id}/booking-lines - Lines retrieved: practitioner_id=%d, count=%d",
		practitionerID, len(result.BookingLines))
	handlers.RespondJSON(w, http.StatusOK, result.BookingLines)
}
