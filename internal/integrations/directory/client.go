package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// HTTPClient клиент справочника клиентов, питомцев и сотрудников
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewHTTPClient создает новый экземпляр клиента справочника
func NewHTTPClient(baseURL string, timeout time.Duration, log Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ResolveClient получает клиента по ID
func (c *HTTPClient) ResolveClient(ctx context.Context, id uuid.UUID) (*domain.ClientSummary, error) {
	var client Client
	if err := c.get(ctx, fmt.Sprintf("%s/internal/clients/%s", c.baseURL, id), ErrClientNotFound, &client); err != nil {
		return nil, err
	}
	return client.toDomain(), nil
}

// ResolvePet получает питомца по ID
func (c *HTTPClient) ResolvePet(ctx context.Context, id uuid.UUID) (*domain.PetSummary, error) {
	var pet Pet
	if err := c.get(ctx, fmt.Sprintf("%s/internal/pets/%s", c.baseURL, id), ErrPetNotFound, &pet); err != nil {
		return nil, err
	}
	return pet.toDomain(), nil
}

// ResolveEmployee получает сотрудника по ID
func (c *HTTPClient) ResolveEmployee(ctx context.Context, id uuid.UUID) (*domain.EmployeeSummary, error) {
	var employee Employee
	if err := c.get(ctx, fmt.Sprintf("%s/internal/employees/%s", c.baseURL, id), ErrEmployeeNotFound, &employee); err != nil {
		return nil, err
	}
	return employee.toDomain(), nil
}

// get выполняет GET запрос и декодирует ответ в out
// 404 превращается в notFoundErr
func (c *HTTPClient) get(ctx context.Context, url string, notFoundErr error, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Directory request failed: url=%s, error=%v", url, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	case http.StatusBadRequest:
		return fmt.Errorf("%w: invalid id format", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
