package create_booking_line

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest проверяет то, что не покрывает проверка слота
func validateRequest(req *Request) error {
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
