package aggregate_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
)

type fakeClient struct {
	windows []domain.AvailabilityWindow
	err     error
	calls   int
}

func (c *fakeClient) GetTimeslots(_ context.Context, _ time.Time, _, _ string) ([]domain.AvailabilityWindow, error) {
	c.calls++
	return c.windows, c.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
}

func TestExecute_GlobalAggregation(t *testing.T) {
	client := &fakeClient{windows: []domain.AvailabilityWindow{
		window("2024-03-04", "09:00", "09:45", "cal1", "Anna"),
		window("2024-03-04", "09:00", "09:45", "cal2", "Boris"),
	}}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       testDate(),
		CategoryID: "cat1",
		ServiceID:  "svc1",
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "09:00 - 09:45", resp.Slots[0].Label)
	assert.Equal(t, "cal1", resp.Slots[0].CalendarID)
}

func TestExecute_PinnedCalendarFiltersWindows(t *testing.T) {
	client := &fakeClient{windows: []domain.AvailabilityWindow{
		window("2024-03-04", "09:00", "09:45", "cal1", "Anna"),
		window("2024-03-04", "10:00", "10:45", "cal2", "Boris"),
	}}
	uc := NewUseCase(client, nopLogger{})

	calendarID := "cal2"
	resp, err := uc.Execute(context.Background(), &Request{
		Date:        testDate(),
		CategoryID:  "cat1",
		ServiceID:   "svc1",
		CalendarID:  &calendarID,
		PerResource: true,
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "cal2", resp.Slots[0].CalendarID)
	assert.Equal(t, "Boris", resp.Slots[0].EmployeeName)
}

func TestExecute_TransportFailureDegradesToEmpty(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       testDate(),
		CategoryID: "cat1",
		ServiceID:  "svc1",
	})

	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ValidatesRequest(t *testing.T) {
	uc := NewUseCase(&fakeClient{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"missing category", &Request{Date: testDate(), ServiceID: "svc1"}},
		{"missing service", &Request{Date: testDate(), CategoryID: "cat1"}},
		{"missing date", &Request{CategoryID: "cat1", ServiceID: "svc1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
