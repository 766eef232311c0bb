package create_booking_line

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/clinicregistry"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduling/slotcheck"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type repoMock struct{ mock.Mock }

func (m *repoMock) Create(ctx context.Context, line *domain.BookingLine) (*domain.BookingLine, error) {
	args := m.Called(ctx, line)
	if v := args.Get(0); v != nil {
		return v.(*domain.BookingLine), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *repoMock) GetActive(ctx context.Context) ([]domain.BookingLine, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.BookingLine), args.Error(1)
	}
	return nil, args.Error(1)
}

type registryMock struct{ mock.Mock }

func (m *registryMock) GetPractitioner(ctx context.Context, id int64) (*clinicregistry.Practitioner, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*clinicregistry.Practitioner), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *registryMock) GetPatient(ctx context.Context, id int64) (*clinicregistry.Patient, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*clinicregistry.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *registryMock) GetService(ctx context.Context, id int64) (*clinicregistry.Service, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*clinicregistry.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

type passThroughTx struct {
	calls int
	err   error
}

func (tx *passThroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	if tx.err != nil {
		return tx.err
	}
	return fn(ctx)
}

type rejectionRecorder struct{ rules []string }

func (r *rejectionRecorder) ObserveSlotRejection(rule string) {
	r.rules = append(r.rules, rule)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var now = time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)

type fixture struct {
	repo     *repoMock
	registry *registryMock
	tx       *passThroughTx
	metrics  *rejectionRecorder
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		repo:     &repoMock{},
		registry: &registryMock{},
		tx:       &passThroughTx{},
		metrics:  &rejectionRecorder{},
	}
	f.uc = NewUseCase(f.repo, f.registry, f.tx, f.metrics, logger.NewNop()).
		WithTimeProvider(fixedTime{t: now})
	return f
}

func (f *fixture) registryOK() {
	f.registry.On("GetPractitioner", mock.Anything, int64(7)).
		Return(&clinicregistry.Practitioner{ID: 7, Name: "Dr. Ivanova", Active: ptr.Ptr(true)}, nil)
	f.registry.On("GetPatient", mock.Anything, int64(11)).
		Return(&clinicregistry.Patient{ID: 11, Name: "Petrov"}, nil)
	f.registry.On("GetService", mock.Anything, int64(3)).
		Return(&clinicregistry.Service{ID: 3, Name: "Consultation"}, nil)
}

func validRequest() *Request {
	return &Request{
		UserID:         1,
		PractitionerID: 7,
		PatientID:      11,
		ServiceID:      3,
		ScheduledAt:    "2025-03-10T10:00",
	}
}

func TestExecute_CreatesLine(t *testing.T) {
	f := newFixture()
	f.registryOK()

	f.repo.On("GetActive", mock.Anything).Return([]domain.BookingLine{
		{ID: 1, PractitionerID: 7, ScheduledAt: "2025-03-10 11:00", Status: domain.StatusScheduled},
		{ID: 2, PractitionerID: 8, ScheduledAt: "2025-03-10 10:00", Status: domain.StatusScheduled},
	}, nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(l *domain.BookingLine) bool {
		return l.PractitionerID == 7 && l.ScheduledAt == "2025-03-10 10:00:00" && l.Status == domain.StatusScheduled
	})).Return(&domain.BookingLine{
		ID:             42,
		PractitionerID: 7,
		PatientID:      11,
		ServiceID:      3,
		ScheduledAt:    "2025-03-10 10:00:00",
		Status:         domain.StatusScheduled,
	}, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "Dr. Ivanova", resp.PractitionerName)
	assert.Equal(t, "Petrov", resp.PatientName)
	assert.Equal(t, "Consultation", resp.ServiceName)
	assert.Equal(t, 1, f.tx.calls)
	assert.Empty(t, f.metrics.rules)
	f.repo.AssertExpectations(t)
}

func TestExecute_PractitionerBusy(t *testing.T) {
	f := newFixture()
	f.registryOK()

	f.repo.On("GetActive", mock.Anything).Return([]domain.BookingLine{
		{ID: 1, PractitionerID: 7, ScheduledAt: "2025-03-10 10:30", Status: domain.StatusScheduled},
	}, nil)

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, slotcheck.ErrPractitionerUnavailable)
	assert.Equal(t, []string{string(slotcheck.RuleUnavailable)}, f.metrics.rules)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_PrecheckFailuresSkipRegistry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
		want   error
		rule   slotcheck.Rule
	}{
		{
			name:   "missing service",
			mutate: func(r *Request) { r.ServiceID = 0 },
			want:   slotcheck.ErrMissingField,
			rule:   slotcheck.RuleMissingField,
		},
		{
			name:   "malformed date",
			mutate: func(r *Request) { r.ScheduledAt = "2025-02-30 10:00" },
			want:   slotcheck.ErrInvalidDateTime,
			rule:   slotcheck.RuleInvalidDate,
		},
		{
			name:   "past date",
			mutate: func(r *Request) { r.ScheduledAt = "2025-03-09 10:00" },
			want:   slotcheck.ErrDateInPast,
			rule:   slotcheck.RuleDateInPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, []string{string(tt.rule)}, f.metrics.rules)
			assert.Equal(t, 0, f.tx.calls)
			f.registry.AssertNotCalled(t, "GetPractitioner", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_RegistryErrors(t *testing.T) {
	t.Run("practitioner not found", func(t *testing.T) {
		f := newFixture()
		f.registry.On("GetPractitioner", mock.Anything, int64(7)).
			Return(nil, clinicregistry.ErrPractitionerNotFound)

		_, err := f.uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrPractitionerNotFound)
	})

	t.Run("practitioner inactive", func(t *testing.T) {
		f := newFixture()
		f.registry.On("GetPractitioner", mock.Anything, int64(7)).
			Return(&clinicregistry.Practitioner{ID: 7, Active: ptr.Ptr(false)}, nil)

		_, err := f.uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrPractitionerInactive)
	})

	t.Run("patient not found", func(t *testing.T) {
		f := newFixture()
		f.registry.On("GetPractitioner", mock.Anything, int64(7)).
			Return(&clinicregistry.Practitioner{ID: 7}, nil)
		f.registry.On("GetPatient", mock.Anything, int64(11)).
			Return(nil, clinicregistry.ErrPatientNotFound)

		_, err := f.uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrPatientNotFound)
	})

	t.Run("registry down", func(t *testing.T) {
		f := newFixture()
		f.registry.On("GetPractitioner", mock.Anything, int64(7)).
			Return(nil, clinicregistry.ErrInternal)

		_, err := f.uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestExecute_RepositoryError(t *testing.T) {
	f := newFixture()
	f.registryOK()
	f.repo.On("GetActive", mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_NotesTooLong(t *testing.T) {
	f := newFixture()
	req := validRequest()
	notes := string(make([]byte, domain.MaxNotesLength+1))
	req.Notes = &notes

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StringIDsFromForm(t *testing.T) {
	f := newFixture()
	f.registryOK()
	f.repo.On("GetActive", mock.Anything).Return([]domain.BookingLine{}, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).
		Return(&domain.BookingLine{ID: 1, PractitionerID: 7, Status: domain.StatusScheduled}, nil)

	req := validRequest()
	req.PractitionerID = types.ParseFlexibleID("7")

	_, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
}

func TestExecute_ConcurrentBookingRerunsAvailabilityCheck(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	f := newFixture()
	f.registryOK()
	f.uc.txManager = txmanager.NewTransactionManager(dbmetrics.Wrap(db, nil))

	// Первая попытка проигрывает параллельной записи на тот же интервал,
	// вторая видит эту запись и отклоняет слот
	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()
	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	f.repo.On("GetActive", mock.Anything).Return([]domain.BookingLine{}, nil).Once()
	f.repo.On("GetActive", mock.Anything).Return([]domain.BookingLine{
		{ID: 99, PractitionerID: 7, ScheduledAt: "2025-03-10 10:00:00", Status: domain.StatusScheduled},
	}, nil).Once()
	f.repo.On("Create", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("execute insert: %w", &pq.Error{Code: "40001"})).Once()

	_, err = f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, slotcheck.ErrPractitionerUnavailable)
	assert.Equal(t, []string{string(slotcheck.RuleUnavailable)}, f.metrics.rules)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
	f.repo.AssertExpectations(t)
}

func TestExecute_SerializationRetriesExhausted(t *testing.T) {
	f := newFixture()
	f.registryOK()
	f.tx.err = fmt.Errorf("%w: %w", txmanager.ErrSerializationFailure, &pq.Error{Code: "40001"})

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotContended)
	assert.NotErrorIs(t, err, ErrInternal)
}

func TestExecute_PractitionerWithoutActiveFlagIsAccepted(t *testing.T) {
	f := newFixture()
	f.registry.On("GetPractitioner", mock.Anything, int64(7)).
		Return(&clinicregistry.Practitioner{ID: 7, Name: "Dr. Ivanova"}, nil)
	f.registry.On("GetPatient", mock.Anything, int64(11)).
		Return(&clinicregistry.Patient{ID: 11, Name: "Petrov"}, nil)
	f.registry.On("GetService", mock.Anything, int64(3)).
		Return(&clinicregistry.Service{ID: 3, Name: "Consultation"}, nil)
	f.repo.On("GetActive", mock.Anything).Return([]domain.BookingLine{}, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).
		Return(&domain.BookingLine{ID: 5, PractitionerID: 7, Status: domain.StatusScheduled}, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
}
