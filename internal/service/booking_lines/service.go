package booking_lines

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	bookingLineRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking_line"
	"github.com/m04kA/SMC-ScheduleService/internal/service/booking_lines/models"
)

// Service сервис чтения и отмены строк расписания
type Service struct {
	lineRepo  BookingLineRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса
func NewService(lineRepo BookingLineRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		lineRepo:  lineRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetByID получает строку расписания по ID
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingLineResponse, error) {
	s.logger.Info("GetByID: fetching booking line id=%d for user=%d", id, userID)

	line, err := s.lineRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingLineRepo.ErrBookingLineNotFound) {
			s.logger.Warn("GetByID: booking line id=%d not found", id)
			return nil, ErrBookingLineNotFound
		}
		s.logger.Error("GetByID: repository error for booking line id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingLine(line), nil
}

// ListByPractitioner возвращает строки специалиста, новые первыми.
// Отменённые строки включаются только по запросу.
func (s *Service) ListByPractitioner(ctx context.Context, req *models.ListByPractitionerRequest) (*models.BookingLineListResponse, error) {
	s.logger.Info("ListByPractitioner: practitioner=%d, user=%d, includeCancelled=%t, limit=%d",
		req.PractitionerID, req.UserID, req.IncludeCancelled, req.Limit)

	if req.PractitionerID <= 0 {
		return nil, fmt.Errorf("%w: practitioner id must be positive", ErrInvalidInput)
	}

	limit := req.Limit
	if limit == 0 {
		limit = models.DefaultListLimit
	}
	if limit > domain.MaxBookingLinesLimit {
		s.logger.Warn("ListByPractitioner: limit=%d exceeds max=%d", limit, domain.MaxBookingLinesLimit)
		return nil, fmt.Errorf("%w: limit must not exceed %d", ErrInvalidInput, domain.MaxBookingLinesLimit)
	}

	lines, err := s.lineRepo.GetByPractitioner(ctx, req.PractitionerID, req.IncludeCancelled, limit)
	if err != nil {
		s.logger.Error("ListByPractitioner: repository error for practitioner=%d: %v", req.PractitionerID, err)
		return nil, fmt.Errorf("%w: ListByPractitioner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByPractitioner: fetched %d lines for practitioner=%d", len(lines), req.PractitionerID)
	return models.FromDomainBookingLineList(lines), nil
}

// Cancel отменяет строку расписания. Отменить можно только запланированную строку.
func (s *Service) Cancel(ctx context.Context, lineID int64, req *models.CancelRequest) error {
	s.logger.Info("Cancel: cancelling booking line id=%d by user=%d", lineID, req.UserID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		line, err := s.lineRepo.GetByID(txCtx, lineID)
		if err != nil {
			if errors.Is(err, bookingLineRepo.ErrBookingLineNotFound) {
				s.logger.Warn("Cancel: booking line id=%d not found", lineID)
				return ErrBookingLineNotFound
			}
			s.logger.Error("Cancel: repository error for booking line id=%d: %v", lineID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !line.CanBeCancelled() {
			s.logger.Warn("Cancel: booking line id=%d cannot be cancelled, status=%s", lineID, line.Status)
			return ErrCannotCancel
		}

		if err := s.lineRepo.Cancel(txCtx, lineID); err != nil {
			if errors.Is(err, bookingLineRepo.ErrBookingLineNotFound) {
				return ErrBookingLineNotFound
			}
			s.logger.Error("Cancel: repository error for booking line id=%d: %v", lineID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking line id=%d", lineID)
	return nil
}
