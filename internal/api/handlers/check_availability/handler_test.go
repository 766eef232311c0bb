package check_availability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkAvailability "github.com/m04kA/SMC-ScheduleService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type useCaseStub struct {
	got  *checkAvailability.Request
	resp *checkAvailability.Response
	err  error
}

func (s *useCaseStub) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	s.got = req
	return s.resp, s.err
}

func post(uc *useCaseStub, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/availability/check", strings.NewReader(body)))
	return w
}

func TestHandle_Available(t *testing.T) {
	uc := &useCaseStub{resp: &checkAvailability.Response{Available: true}}

	w := post(uc, `{"practitionerId":"7","proposedAt":"2025-03-10T10:00","excludeLineId":"5"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"available":true}`, w.Body.String())
	assert.Equal(t, int64(7), uc.got.PractitionerID.Int64())
	require.NotNil(t, uc.got.ExcludeLineID)
	assert.Equal(t, int64(5), *uc.got.ExcludeLineID)
}

func TestHandle_Conflict(t *testing.T) {
	id := int64(3)
	uc := &useCaseStub{resp: &checkAvailability.Response{ConflictLineID: &id}}

	w := post(uc, `{"practitionerId":7,"proposedAt":"2025-03-10 10:00"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"available":false,"conflictLineId":3}`, w.Body.String())
	assert.Nil(t, uc.got.ExcludeLineID)
}

func TestHandle_Failures(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, post(&useCaseStub{}, `[]`).Code)
	assert.Equal(t, http.StatusInternalServerError, post(&useCaseStub{err: errors.New("db")}, `{"practitionerId":7}`).Code)
}
