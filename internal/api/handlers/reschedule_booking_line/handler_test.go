package reschedule_booking_line

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduling/slotcheck"
	rescheduleBookingLine "github.com/m04kA/SMC-ScheduleService/internal/usecase/reschedule_booking_line"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type useCaseStub struct {
	got  *rescheduleBookingLine.Request
	resp *rescheduleBookingLine.Response
	err  error
}

func (s *useCaseStub) Execute(_ context.Context, req *rescheduleBookingLine.Request) (*rescheduleBookingLine.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(uc *useCaseStub, path, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/api/v1/booking-lines/{lineId}/schedule", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPut)

	r := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	r.Header.Set("X-User-ID", "3")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle_OK(t *testing.T) {
	uc := &useCaseStub{resp: &rescheduleBookingLine.Response{ID: 5, ScheduledAt: "2025-03-11 09:00:00"}}

	w := serve(uc, "/api/v1/booking-lines/5/schedule", `{"scheduledAt":"2025-03-11 09:00"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(5), uc.got.LineID)
	assert.Equal(t, int64(3), uc.got.UserID)
	assert.Contains(t, w.Body.String(), `"scheduledAt":"2025-03-11 09:00:00"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "busy", err: &slotcheck.RejectionError{Rule: slotcheck.RuleUnavailable, Message: slotcheck.MsgUnavailable}, status: http.StatusConflict},
		{name: "past", err: &slotcheck.RejectionError{Rule: slotcheck.RuleDateInPast, Message: slotcheck.MsgDateInPast}, status: http.StatusBadRequest},
		{name: "not found", err: rescheduleBookingLine.ErrBookingLineNotFound, status: http.StatusNotFound},
		{name: "cancelled", err: rescheduleBookingLine.ErrCannotReschedule, status: http.StatusBadRequest},
		{name: "contended", err: rescheduleBookingLine.ErrSlotContended, status: http.StatusConflict},
		{name: "internal", err: rescheduleBookingLine.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&useCaseStub{err: tt.err}, "/api/v1/booking-lines/5/schedule", `{"scheduledAt":"2025-03-11 09:00"}`)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandle_InvalidLineID(t *testing.T) {
	uc := &useCaseStub{}

	w := serve(uc, "/api/v1/booking-lines/abc/schedule", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.got)
}
