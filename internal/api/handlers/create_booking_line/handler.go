package create_booking_line

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	createBookingLine "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking_line"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgPractitionerNotFound = "специалист не найден"
	msgPractitionerInactive = "специалист не принимает записи"
	msgPatientNotFound      = "пациент не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgInvalidInput         = "некорректные данные записи"
	msgSlotContended        = "время одновременно занимают другие записи, повторите попытку"
)

type Handler struct {
	useCase CreateBookingLineUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingLineUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-lines
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /booking-lines - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingLineRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-lines - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		if handlers.RespondRejection(w, err) {
			h.logger.Warn("POST /booking-lines - Slot rejected: practitioner_id=%d, reason=%v", req.PractitionerID, err)
			return
		}

		switch {
		case errors.Is(err, createBookingLine.ErrPractitionerNotFound):
			h.logger.Warn("POST /booking-lines - Practitioner not found: practitioner_id=%d", req.PractitionerID)
			handlers.RespondNotFound(w, msgPractitionerNotFound)

		case errors.Is(err, createBookingLine.ErrPractitionerInactive):
			h.logger.Warn("POST /booking-lines - Practitioner inactive: practitioner_id=%d", req.PractitionerID)
			handlers.RespondConflict(w, msgPractitionerInactive)

		case errors.Is(err, createBookingLine.ErrPatientNotFound):
			h.logger.Warn("POST /booking-lines - Patient not found: patient_id=%d", req.PatientID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, createBookingLine.ErrServiceNotFound):
			h.logger.Warn("POST /booking-lines - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBookingLine.ErrSlotContended):
			h.logger.Warn("POST /booking-lines - Slot contended: practitioner_id=%d", req.PractitionerID)
			handlers.RespondConflict(w, msgSlotContended)

		case errors.Is(err, createBookingLine.ErrInvalidInput):
			h.logger.Warn("POST /booking-lines - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /booking-lines - Failed to create booking line: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-lines - Booking line created: line_id=%d, practitioner_id=%d, user_id=%d",
		result.ID, result.PractitionerID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
