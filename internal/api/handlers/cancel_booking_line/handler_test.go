package cancel_booking_line

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/booking_lines"
	"github.com/m04kA/SMC-ScheduleService/internal/service/booking_lines/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type serviceStub struct {
	gotUserID int64
	err       error
}

func (s *serviceStub) Cancel(_ context.Context, _ int64, req *models.CancelRequest) error {
	s.gotUserID = req.UserID
	return s.err
}

func serve(svc *serviceStub) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/api/v1/booking-lines/{lineId}/cancel", NewHandler(svc, logger.NewNop()).Handle)

	r := httptest.NewRequest(http.MethodPatch, "/api/v1/booking-lines/5/cancel", nil)
	r.Header.Set("X-User-ID", "9")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle(t *testing.T) {
	svc := &serviceStub{}
	assert.Equal(t, http.StatusNoContent, serve(svc).Code)
	assert.Equal(t, int64(9), svc.gotUserID)

	assert.Equal(t, http.StatusNotFound, serve(&serviceStub{err: booking_lines.ErrBookingLineNotFound}).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&serviceStub{err: booking_lines.ErrCannotCancel}).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&serviceStub{err: booking_lines.ErrInternal}).Code)
}
