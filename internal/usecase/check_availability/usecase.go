package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduling/availability"
)

// UseCase проверка занятости специалиста без записи
type UseCase struct {
	lineRepo BookingLineRepository
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(lineRepo BookingLineRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		lineRepo: lineRepo,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute читает актуальное расписание и проверяет кандидата.
// Пустая или нераспознанная дата считается доступной.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	lines, err := uc.lineRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get booking lines: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking lines: %v", ErrInternal, err)
	}

	conflict := availability.FindConflict(domain.CandidateSlot{
		PractitionerID: req.PractitionerID,
		ProposedAt:     req.ProposedAt,
		ExcludeLineID:  req.ExcludeLineID,
	}, lines)

	resp := &Response{Available: conflict == nil}
	if conflict != nil {
		resp.ConflictLineID = &conflict.ID
		uc.logger.Info("CheckAvailability: practitioner=%d busy at %q, conflicts with line id=%d",
			req.PractitionerID, req.ProposedAt, conflict.ID)
	}

	uc.metrics.ObserveAvailability(resp.Available)

	return resp, nil
}
