package clinicregistry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, logger.NewNop())
}

func TestClient_GetPractitioner(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/practitioners/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		// Бэкенд отдаёт id строкой
		_, _ = w.Write([]byte(`{"id":"7","name":"Dr. Costa","active":true}`))
	})

	p, err := client.GetPractitioner(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID.Int64())
	assert.Equal(t, "Dr. Costa", p.Name)
	assert.True(t, p.IsActive())
}

func TestPractitioner_IsActive(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/practitioners/1":
			_, _ = w.Write([]byte(`{"id":1,"name":"Dr. Costa"}`))
		case "/practitioners/2":
			_, _ = w.Write([]byte(`{"id":2,"name":"Dr. Silva","active":false}`))
		}
	})

	// Флаг не передан: специалист считается активным
	p, err := client.GetPractitioner(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, p.Active)
	assert.True(t, p.IsActive())

	p, err = client.GetPractitioner(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, p.IsActive())
}

func TestClient_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetPatient(context.Background(), 1)
	assert.ErrorIs(t, err, ErrPatientNotFound)

	_, err = client.GetService(context.Background(), 1)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = client.GetPractitioner(context.Background(), 1)
	assert.ErrorIs(t, err, ErrPractitionerNotFound)
}

func TestClient_UnexpectedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	_, err := client.GetService(context.Background(), 3)

	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream down")
}

func TestClient_ErrorResponseMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":500,"message":"registry database unavailable"}`))
	})

	_, err := client.GetPatient(context.Background(), 11)

	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "registry database unavailable")
	assert.NotContains(t, err.Error(), `"code"`)
}

func TestClient_BadJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	})

	_, err := client.GetService(context.Background(), 3)

	assert.ErrorIs(t, err, ErrInvalidResponse)
}
