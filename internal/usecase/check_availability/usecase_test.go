package check_availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

type stubRepo struct {
	lines []domain.BookingLine
	err   error
}

func (s stubRepo) GetActive(context.Context) ([]domain.BookingLine, error) {
	return s.lines, s.err
}

type availabilityRecorder struct{ results []bool }

func (r *availabilityRecorder) ObserveAvailability(available bool) {
	r.results = append(r.results, available)
}

var schedule = []domain.BookingLine{
	{ID: 1, PractitionerID: 7, ScheduledAt: "2025-03-10T10:00", Status: domain.StatusScheduled},
	{ID: 2, PractitionerID: 7, ScheduledAt: "not a date", Status: domain.StatusScheduled},
	{ID: 3, PractitionerID: 8, ScheduledAt: "2025-03-10 11:00", Status: domain.StatusScheduled},
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name         string
		req          Request
		wantOK       bool
		wantConflict *int64
	}{
		{name: "inside window", req: Request{PractitionerID: 7, ProposedAt: "2025-03-10 10:30"}, wantConflict: ptr.Ptr(int64(1))},
		{name: "exactly one hour apart", req: Request{PractitionerID: 7, ProposedAt: "2025-03-10 11:00"}, wantOK: true},
		{name: "other practitioner", req: Request{PractitionerID: 9, ProposedAt: "2025-03-10 10:00"}, wantOK: true},
		{name: "edited line excluded", req: Request{PractitionerID: 7, ProposedAt: "2025-03-10 10:15", ExcludeLineID: ptr.Ptr(int64(1))}, wantOK: true},
		{name: "empty time", req: Request{PractitionerID: 7}, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &availabilityRecorder{}
			uc := NewUseCase(stubRepo{lines: schedule}, rec, logger.NewNop())

			resp, err := uc.Execute(context.Background(), &tt.req)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, resp.Available)
			assert.Equal(t, tt.wantConflict, resp.ConflictLineID)
			assert.Equal(t, []bool{tt.wantOK}, rec.results)
		})
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := NewUseCase(stubRepo{err: errors.New("db down")}, &availabilityRecorder{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{PractitionerID: 7, ProposedAt: "2025-03-10 10:00"})

	assert.ErrorIs(t, err, ErrInternal)
}
