package get_practitioner_booking_lines

import (
	"strconv"

	"github.com/m04kA/SMC-ScheduleService/internal/service/booking_lines/models"
)

// ToServiceRequest собирает запрос к сервису из параметров URL.
// Query params: includeCancelled (bool), limit (uint)
func ToServiceRequest(practitionerID, userID int64, includeCancelledStr, limitStr string) (*models.ListByPractitionerRequest, error) {
	req := &models.ListByPractitionerRequest{
		UserID:         userID,
		PractitionerID: practitionerID,
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	if limitStr != "" {
		limit, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}

	return req, nil
}
