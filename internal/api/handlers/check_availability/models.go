package check_availability

import (
	checkAvailability "github.com/m04kA/SMC-ScheduleService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	PractitionerID types.FlexibleID  `json:"practitionerId"`
	ProposedAt     string            `json:"proposedAt"`
	ExcludeLineID  *types.FlexibleID `json:"excludeLineId,omitempty"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available      bool   `json:"available"`
	ConflictLineID *int64 `json:"conflictLineId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() *checkAvailability.Request {
	req := &checkAvailability.Request{
		PractitionerID: r.PractitionerID,
		ProposedAt:     r.ProposedAt,
	}

	if r.ExcludeLineID != nil && !r.ExcludeLineID.IsZero() {
		id := r.ExcludeLineID.Int64()
		req.ExcludeLineID = &id
	}

	return req
}
