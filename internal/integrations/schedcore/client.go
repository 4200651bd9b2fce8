package schedcore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы со scheduling core (SchedCore).
// SchedCore владеет категориями, услугами, календарями и записями;
// консоль только читает окна доступности и ведёт CRUD записей.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента SchedCore
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SetTransport подменяет транспорт HTTP-клиента (обёртка метрик)
func (c *Client) SetTransport(rt http.RoundTripper) {
	c.httpClient.Transport = rt
}

// GetTimeslots получает сырые окна доступности на дату.
// GET /appointments/timeslots?date&category_id&service_id
func (c *Client) GetTimeslots(ctx context.Context, date time.Time, categoryID, serviceID string) ([]domain.AvailabilityWindow, error) {
	q := url.Values{}
	q.Set("date", date.Format(domain.DateFormat))
	q.Set("category_id", categoryID)
	q.Set("service_id", serviceID)

	endpoint := fmt.Sprintf("%s/appointments/timeslots?%s", c.baseURL, q.Encode())

	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.unexpectedStatus(resp)
	}

	var raw []rawWindow
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode timeslots: %v", ErrInvalidResponse, err)
	}

	windows := make([]domain.AvailabilityWindow, 0, len(raw))
	for _, w := range raw {
		window, err := w.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: malformed timeslot window: %v", ErrInvalidResponse, err)
		}
		windows = append(windows, window)
	}

	return windows, nil
}

// ListAppointments получает записи в диапазоне дат.
// GET /appointments?start&end
func (c *Client) ListAppointments(ctx context.Context, start, end time.Time) ([]*domain.Appointment, error) {
	q := url.Values{}
	q.Set("start", start.Format(domain.DateFormat))
	q.Set("end", end.Format(domain.DateFormat))

	endpoint := fmt.Sprintf("%s/appointments?%s", c.baseURL, q.Encode())
	return c.listAppointments(ctx, endpoint)
}

// ListAppointmentsByContact получает записи контакта.
// GET /appointments/contact/{contactId}
func (c *Client) ListAppointmentsByContact(ctx context.Context, contactID string) ([]*domain.Appointment, error) {
	endpoint := fmt.Sprintf("%s/appointments/contact/%s", c.baseURL, url.PathEscape(contactID))
	return c.listAppointments(ctx, endpoint)
}

func (c *Client) listAppointments(ctx context.Context, endpoint string) ([]*domain.Appointment, error) {
	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.unexpectedStatus(resp)
	}

	var raw []wireAppointment
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode appointments: %v", ErrInvalidResponse, err)
	}

	appointments := make([]*domain.Appointment, 0, len(raw))
	for i := range raw {
		appointment, err := raw[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: malformed appointment: %v", ErrInvalidResponse, err)
		}
		appointments = append(appointments, appointment)
	}

	return appointments, nil
}

// CreateAppointment создает запись.
// POST /appointments
func (c *Client) CreateAppointment(ctx context.Context, draft *AppointmentDraft) (*domain.Appointment, error) {
	endpoint := fmt.Sprintf("%s/appointments", c.baseURL)

	resp, err := c.do(ctx, http.MethodPost, endpoint, draft.toWire())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, c.decodeRejection(resp)
	default:
		return nil, c.unexpectedStatus(resp)
	}

	var raw wireAppointment
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode created appointment: %v", ErrInvalidResponse, err)
	}

	return raw.toDomain()
}

// UpdateAppointment частично обновляет запись.
// PUT /appointments/{id}
func (c *Client) UpdateAppointment(ctx context.Context, id string, patch *AppointmentPatch) (*domain.Appointment, error) {
	endpoint := fmt.Sprintf("%s/appointments/%s", c.baseURL, url.PathEscape(id))

	resp, err := c.do(ctx, http.MethodPut, endpoint, patch)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrAppointmentNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, c.decodeRejection(resp)
	default:
		return nil, c.unexpectedStatus(resp)
	}

	var raw wireAppointment
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode updated appointment: %v", ErrInvalidResponse, err)
	}

	return raw.toDomain()
}

// DeleteAppointment удаляет запись.
// DELETE /appointments/{id} → {"status": "success"}
func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("%s/appointments/%s", c.baseURL, url.PathEscape(id))

	resp, err := c.do(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrAppointmentNotFound
	default:
		return c.unexpectedStatus(resp)
	}

	var result deleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode delete response: %v", ErrInvalidResponse, err)
	}
	if result.Status != "success" {
		return fmt.Errorf("%w: delete status %q", ErrInvalidResponse, result.Status)
	}

	return nil
}

// ListCalendars получает страницу ростера ресурсов.
// GET /calendars?page&limit
func (c *Client) ListCalendars(ctx context.Context, page, limit int) (*domain.CalendarPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	endpoint := fmt.Sprintf("%s/calendars?%s", c.baseURL, q.Encode())

	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.unexpectedStatus(resp)
	}

	var raw wireCalendarPage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode calendars page: %v", ErrInvalidResponse, err)
	}

	return raw.toDomain(), nil
}

// do выполняет запрос к SchedCore. Транспортные ошибки заворачиваются в
// ErrUnavailable, чтобы вызывающие слои могли решать о деградации.
func (c *Client) do(ctx context.Context, method, endpoint string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("SchedCore request failed: %s %s: %v", method, endpoint, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return resp, nil
}

// decodeRejection разбирает доменный отказ SchedCore; форма
// errorValidation.fields проверяется до общего сообщения
func (c *Client) decodeRejection(resp *http.Response) error {
	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return fmt.Errorf("%w: unreadable rejection body: %v", ErrInvalidResponse, err)
	}

	if er.ErrorValidation != nil && len(er.ErrorValidation.Fields) > 0 {
		return &ValidationError{Fields: er.ErrorValidation.Fields}
	}
	if er.Message != "" {
		return fmt.Errorf("%w: %s", ErrInvalidResponse, er.Message)
	}
	return fmt.Errorf("%w: rejected with status %d", ErrInvalidResponse, resp.StatusCode)
}

func (c *Client) unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
}
