package schedcore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, nopLogger{})
}

func TestGetTimeslots(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appointments/timeslots", r.URL.Path)
		assert.Equal(t, "2024-03-04", r.URL.Query().Get("date"))
		assert.Equal(t, "cat1", r.URL.Query().Get("category_id"))
		assert.Equal(t, "svc1", r.URL.Query().Get("service_id"))

		_ = json.NewEncoder(w).Encode([]map[string]string{
			{
				"start":         "2024-03-04T08:00:00.000Z",
				"end":           "2024-03-04T08:45:00.000Z",
				"calendar_id":   "cal1",
				"employee_name": "Анна",
			},
		})
	})

	windows, err := client.GetTimeslots(context.Background(),
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), "cat1", "svc1")

	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, "cal1", windows[0].CalendarID)
	assert.Equal(t, "Анна", windows[0].EmployeeName)
	assert.Equal(t, 8, windows[0].Start.UTC().Hour())
}

func TestGetTimeslots_MalformedWindow(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]string{
			{"start": "not-a-date", "end": "2024-03-04T08:45:00.000Z"},
		})
	})

	_, err := client.GetTimeslots(context.Background(),
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), "cat1", "svc1")

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestListAppointments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appointments", r.URL.Path)
		assert.Equal(t, "2024-03-04", r.URL.Query().Get("start"))
		assert.Equal(t, "2024-03-08", r.URL.Query().Get("end"))

		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"id":          "a1",
				"calendar_id": "cal1",
				"start_date":  "2024-03-04T08:00:00.000Z",
				"end_date":    "2024-03-04T08:45:00.000Z",
				"status":      "confirmed",
				"contact":     map[string]string{"id": "c1", "first_name": "Анна", "last_name": "Иванова"},
			},
		})
	})

	list, err := client.ListAppointments(context.Background(),
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a1", list[0].ID)
	assert.Equal(t, domain.StatusConfirmed, list[0].Status)
	assert.Equal(t, "Анна Иванова", list[0].Contact.FullName())
}

func TestCreateAppointment_DecodesValidationRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "validation failed",
			"errorValidation": map[string]interface{}{
				"fields": map[string]string{
					"phone": "invalid phone number",
					"email": "already in use",
				},
			},
		})
	})

	_, err := client.CreateAppointment(context.Background(), &AppointmentDraft{})

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "invalid phone number", ve.Fields["phone"])
	assert.Equal(t, "already in use", ve.Fields["email"])
}

func TestCreateAppointment_RejectionWithoutFieldsFallsBackToMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "slot already taken"})
	})

	_, err := client.CreateAppointment(context.Background(), &AppointmentDraft{})

	_, ok := AsValidationError(err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "slot already taken")
}

func TestCreateAppointment_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "2024-03-04T06:00:00.000Z", payload["start_date"])
		contact, _ := payload["contact"].(map[string]interface{})
		require.NotNil(t, contact)
		assert.Equal(t, "secret123abc", contact["password"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":          "a1",
			"calendar_id": "cal1",
			"start_date":  "2024-03-04T06:00:00.000Z",
			"end_date":    "2024-03-04T06:45:00.000Z",
			"status":      "confirmed",
			"contact":     map[string]string{"id": "c1"},
		})
	})

	created, err := client.CreateAppointment(context.Background(), &AppointmentDraft{
		CalendarID: "cal1",
		StartDate:  "2024-03-04T06:00:00.000Z",
		EndDate:    "2024-03-04T06:45:00.000Z",
		Contact:    domain.Contact{FirstName: "Анна", Password: "secret123abc"},
		Status:     domain.StatusConfirmed,
	})

	require.NoError(t, err)
	assert.Equal(t, "a1", created.ID)
	assert.Equal(t, "c1", created.Contact.ID)
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.UpdateAppointment(context.Background(), "missing", &AppointmentPatch{})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDeleteAppointment_RequiresSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/appointments/a1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "success"})
	})

	assert.NoError(t, client.DeleteAppointment(context.Background(), "a1"))
}

func TestDeleteAppointment_UnexpectedStatusBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "pending"})
	})

	err := client.DeleteAppointment(context.Background(), "a1")

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestListCalendars(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/calendars", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]interface{}{
				{"id": "cal1", "name": "Анна", "active": true},
				{"id": "cal2", "name": "Борис", "active": false},
			},
			"page":        2,
			"limit":       50,
			"total_items": 120,
		})
	})

	page, err := client.ListCalendars(context.Background(), 2, 50)

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.True(t, page.Items[0].Active)
	assert.False(t, page.Items[1].Active)
	assert.True(t, page.HasMore())
}

func TestTransportErrorWrappedAsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // закрываем сразу: любой запрос упирается в отказ соединения
	client := NewClient(srv.URL, time.Second, nopLogger{})

	_, err := client.ListAppointments(context.Background(),
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, ErrUnavailable)
}
