package reschedule_booking_line

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	bookingLineRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking_line"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduling/slotcheck"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// UseCase use case для переноса строки расписания
type UseCase struct {
	lineRepo     BookingLineRepository
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	lineRepo BookingLineRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		lineRepo:     lineRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute переносит строку на новое время.
// Сама строка не считается конфликтом для своего нового времени.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBookingLine: user=%d, line=%d, at=%q", req.UserID, req.LineID, req.ScheduledAt)

	now := uc.timeProvider.Now()

	var result *domain.BookingLine

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		line, err := uc.lineRepo.GetByID(txCtx, req.LineID)
		if err != nil {
			if errors.Is(err, bookingLineRepo.ErrBookingLineNotFound) {
				uc.logger.Warn("RescheduleBookingLine: line id=%d not found", req.LineID)
				return ErrBookingLineNotFound
			}
			uc.logger.Error("RescheduleBookingLine: failed to get line id=%d: %v", req.LineID, err)
			return fmt.Errorf("%w: failed to get booking line: %w", ErrInternal, err)
		}

		if !line.CanBeRescheduled() {
			uc.logger.Warn("RescheduleBookingLine: line id=%d has status %s", line.ID, line.Status)
			return ErrCannotReschedule
		}

		lines, err := uc.lineRepo.GetActive(txCtx)
		if err != nil {
			uc.logger.Error("RescheduleBookingLine: failed to get booking lines: %v", err)
			return fmt.Errorf("%w: failed to get booking lines: %w", ErrInternal, err)
		}

		res := slotcheck.Validate(slotcheck.Input{
			ServiceID:      types.FlexibleID(line.ServiceID),
			PractitionerID: types.FlexibleID(line.PractitionerID),
			PatientID:      types.FlexibleID(line.PatientID),
			ScheduledAt:    req.ScheduledAt,
			ExcludeLineID:  &line.ID,
		}, now, lines)
		if !res.OK {
			uc.logger.Warn("RescheduleBookingLine: slot rejected: rule=%s, line=%d", res.Rule, line.ID)
			uc.metrics.ObserveSlotRejection(string(res.Rule))
			return res.Err()
		}

		scheduledAt := types.ParseInstant(req.ScheduledAt).String()
		if err := uc.lineRepo.UpdateSchedule(txCtx, line.ID, scheduledAt); err != nil {
			uc.logger.Error("RescheduleBookingLine: failed to update line id=%d: %v", line.ID, err)
			return fmt.Errorf("%w: failed to update booking line: %w", ErrInternal, err)
		}

		line.ScheduledAt = scheduledAt
		line.UpdatedAt = now
		result = line
		return nil
	})
	if errors.Is(err, txmanager.ErrSerializationFailure) {
		uc.logger.Warn("RescheduleBookingLine: concurrent booking conflict, giving up: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSlotContended, err)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBookingLine: line id=%d moved to %s", result.ID, result.ScheduledAt)

	return &Response{
		ID:             result.ID,
		PractitionerID: result.PractitionerID,
		PatientID:      result.PatientID,
		ServiceID:      result.ServiceID,
		ScheduledAt:    result.ScheduledAt,
		Status:         string(result.Status),
		Notes:          result.Notes,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}
