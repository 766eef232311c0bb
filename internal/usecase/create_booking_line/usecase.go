package create_booking_line

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/clinicregistry"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduling/slotcheck"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// UseCase use case для создания строки расписания
type UseCase struct {
	lineRepo       BookingLineRepository
	registryClient ClinicRegistryClient
	txManager      TransactionManager
	metrics        Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	lineRepo BookingLineRepository,
	registryClient ClinicRegistryClient,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		lineRepo:       lineRepo,
		registryClient: registryClient,
		txManager:      txManager,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания строки расписания.
// Проверка слота и запись выполняются в сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBookingLine: user=%d, practitioner=%d, patient=%d, service=%d, at=%q",
		req.UserID, req.PractitionerID, req.PatientID, req.ServiceID, req.ScheduledAt)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBookingLine: validation failed: %v", err)
		return nil, err
	}

	// 2. Один момент "сейчас" на весь проход
	now := uc.timeProvider.Now()

	input := slotcheck.Input{
		ServiceID:      req.ServiceID,
		PractitionerID: req.PractitionerID,
		PatientID:      req.PatientID,
		ScheduledAt:    req.ScheduledAt,
	}

	// 3. Предварительная проверка без расписания: поля, формат, прошлое
	if res := slotcheck.Validate(input, now, nil); !res.OK {
		uc.logger.Warn("CreateBookingLine: slot precheck failed: rule=%s, field=%s", res.Rule, res.Field)
		uc.metrics.ObserveSlotRejection(string(res.Rule))
		return nil, res.Err()
	}

	// 4. Проверяем существование специалиста, пациента и услуги
	practitioner, patient, service, err := uc.loadParticipants(ctx, req)
	if err != nil {
		return nil, err
	}

	scheduledAt := types.ParseInstant(req.ScheduledAt).String()

	var result *domain.BookingLine

	// 5. Проверка занятости и запись в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		lines, err := uc.lineRepo.GetActive(txCtx)
		if err != nil {
			uc.logger.Error("CreateBookingLine: failed to get booking lines: %v", err)
			return fmt.Errorf("%w: failed to get booking lines: %w", ErrInternal, err)
		}

		if res := slotcheck.Validate(input, now, lines); !res.OK {
			uc.logger.Warn("CreateBookingLine: slot rejected: rule=%s, practitioner=%d, at=%s",
				res.Rule, req.PractitionerID, scheduledAt)
			uc.metrics.ObserveSlotRejection(string(res.Rule))
			return res.Err()
		}

		created, err := uc.lineRepo.Create(txCtx, &domain.BookingLine{
			PractitionerID: req.PractitionerID.Int64(),
			PatientID:      req.PatientID.Int64(),
			ServiceID:      req.ServiceID.Int64(),
			ScheduledAt:    scheduledAt,
			Status:         domain.StatusScheduled,
			Notes:          req.Notes,
		})
		if err != nil {
			uc.logger.Error("CreateBookingLine: failed to create booking line: %v", err)
			return fmt.Errorf("%w: failed to create booking line: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if errors.Is(err, txmanager.ErrSerializationFailure) {
		uc.logger.Warn("CreateBookingLine: concurrent booking conflict, giving up: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSlotContended, err)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBookingLine: successfully created booking line id=%d", result.ID)

	return &Response{
		ID:               result.ID,
		PractitionerID:   result.PractitionerID,
		PatientID:        result.PatientID,
		ServiceID:        result.ServiceID,
		ScheduledAt:      result.ScheduledAt,
		Status:           string(result.Status),
		PractitionerName: practitioner.Name,
		PatientName:      patient.Name,
		ServiceName:      service.Name,
		Notes:            result.Notes,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}

func (uc *UseCase) loadParticipants(ctx context.Context, req *Request) (
	*clinicregistry.Practitioner,
	*clinicregistry.Patient,
	*clinicregistry.Service,
	error,
) {
	practitioner, err := uc.registryClient.GetPractitioner(ctx, req.PractitionerID.Int64())
	if err != nil {
		if errors.Is(err, clinicregistry.ErrPractitionerNotFound) {
			uc.logger.Warn("CreateBookingLine: practitioner id=%d not found", req.PractitionerID)
			return nil, nil, nil, ErrPractitionerNotFound
		}
		uc.logger.Error("CreateBookingLine: failed to get practitioner id=%d: %v", req.PractitionerID, err)
		return nil, nil, nil, fmt.Errorf("%w: failed to get practitioner: %v", ErrInternal, err)
	}
	if !practitioner.IsActive() {
		uc.logger.Warn("CreateBookingLine: practitioner id=%d is inactive", req.PractitionerID)
		return nil, nil, nil, ErrPractitionerInactive
	}

	patient, err := uc.registryClient.GetPatient(ctx, req.PatientID.Int64())
	if err != nil {
		if errors.Is(err, clinicregistry.ErrPatientNotFound) {
			uc.logger.Warn("CreateBookingLine: patient id=%d not found", req.PatientID)
			return nil, nil, nil, ErrPatientNotFound
		}
		uc.logger.Error("CreateBookingLine: failed to get patient id=%d: %v", req.PatientID, err)
		return nil, nil, nil, fmt.Errorf("%w: failed to get patient: %v", ErrInternal, err)
	}

	service, err := uc.registryClient.GetService(ctx, req.ServiceID.Int64())
	if err != nil {
		if errors.Is(err, clinicregistry.ErrServiceNotFound) {
			uc.logger.Warn("CreateBookingLine: service id=%d not found", req.ServiceID)
			return nil, nil, nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBookingLine: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, nil, nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	return practitioner, patient, service, nil
}
