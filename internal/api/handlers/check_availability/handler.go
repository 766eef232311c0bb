package check_availability

import (
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		h.logger.Error("POST /availability/check - Failed to check availability: practitioner_id=%d, error=%v",
			req.PractitionerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &CheckAvailabilityResponse{
		Available:      result.Available,
		ConflictLineID: result.ConflictLineID,
	})
}
