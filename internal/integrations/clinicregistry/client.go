package clinicregistry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент REST бэкенда клиники (сотрудники, пациенты, услуги)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetPractitioner получает специалиста по ID
func (c *Client) GetPractitioner(ctx context.Context, id int64) (*Practitioner, error) {
	var p Practitioner
	if err := c.get(ctx, fmt.Sprintf("/practitioners/%d", id), ErrPractitionerNotFound, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPatient получает пациента по ID
func (c *Client) GetPatient(ctx context.Context, id int64) (*Patient, error) {
	var p Patient
	if err := c.get(ctx, fmt.Sprintf("/patients/%d", id), ErrPatientNotFound, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetService получает услугу по ID
func (c *Client) GetService(ctx context.Context, id int64) (*Service, error) {
	var s Service
	if err := c.get(ctx, fmt.Sprintf("/services/%d", id), ErrServiceNotFound, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// get выполняет GET запрос и декодирует ответ в out.
// Статус 404 превращается в notFound.
func (c *Client) get(ctx context.Context, path string, notFound error, out interface{}) error {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("clinicregistry: GET %s failed: %v", path, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFound
	case http.StatusBadRequest:
		return fmt.Errorf("%w: invalid id format", ErrInvalidResponse)
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, errorMessage(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// errorMessage достаёт message из ErrorResponse, иначе возвращает тело как есть
func errorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(raw)
}
