package calendar_view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	"github.com/m04kA/SMC-BookingConsole/internal/usecase/booking_wizard"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeStore struct {
	items []*domain.Appointment
	err   error
}

func (s *fakeStore) List(_ context.Context, _, _ time.Time) ([]*domain.Appointment, error) {
	return s.items, s.err
}

type fakeRosterClient struct {
	pages map[int]*domain.CalendarPage
	err   error
	calls int
}

func (c *fakeRosterClient) ListCalendars(_ context.Context, page, limit int) (*domain.CalendarPage, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	if p, ok := c.pages[page]; ok {
		return p, nil
	}
	return &domain.CalendarPage{Page: page, Limit: limit}, nil
}

type fakeSeeder struct {
	lastReq *booking_wizard.SeedRequest
	view    *booking_wizard.SessionView
	err     error
}

func (s *fakeSeeder) StartSeededSession(req *booking_wizard.SeedRequest) (*booking_wizard.SessionView, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func wallTime(day string, hm string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04", day+" "+hm)
	return t.UTC()
}

func appointment(id, calendarID string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:         id,
		CalendarID: calendarID,
		StartDate:  wallTime("2024-03-04", "08:00"),
		EndDate:    wallTime("2024-03-04", "08:45"),
		Status:     status,
		Contact:    domain.Contact{FirstName: "Анна", LastName: "Иванова"},
	}
}

func singlePageRoster(calendars ...domain.Calendar) *fakeRosterClient {
	return &fakeRosterClient{pages: map[int]*domain.CalendarPage{
		1: {Items: calendars, Page: 1, Limit: domain.DefaultRosterPageLimit, TotalItems: len(calendars)},
	}}
}

func TestExecute_ProjectsResourcesAndEvents(t *testing.T) {
	store := &fakeStore{items: []*domain.Appointment{
		appointment("a1", "cal1", domain.StatusConfirmed),
		appointment("a2", "cal2", domain.StatusCancelled),
	}}
	roster := singlePageRoster(
		domain.Calendar{ID: "cal1", Name: "Анна", Active: true},
		domain.Calendar{ID: "cal2", Name: "Борис", Active: true},
		domain.Calendar{ID: "cal3", Name: "Уволенный", Active: false},
	)
	uc := NewUseCase(store, roster, &fakeSeeder{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:          time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		OffsetMinutes: 120,
	})

	require.NoError(t, err)

	// Неактивный календарь не попадает в колонки
	require.Len(t, resp.Resources, 2)
	assert.Equal(t, "cal1", resp.Resources[0].ResourceID)
	assert.Equal(t, "Анна", resp.Resources[0].ResourceTitle)

	// Отменённая запись не попадает в события
	require.Len(t, resp.Events, 1)
	ev := resp.Events[0]
	assert.Equal(t, "a1", ev.ID)
	assert.Equal(t, "Анна Иванова", ev.Title)
	assert.Equal(t, "cal1", ev.ResourceID)
	// GridShift: стена 08:00 при offset=120 уезжает на 06:00, чтобы
	// локальная интерпретация рендерера (+2ч) вернула её обратно к 08:00
	assert.Equal(t, wallTime("2024-03-04", "06:00"), ev.Start)
	assert.Equal(t, wallTime("2024-03-04", "06:45"), ev.End)
}

func TestExecute_PagesThroughRoster(t *testing.T) {
	limit := domain.DefaultRosterPageLimit
	page1 := make([]domain.Calendar, limit)
	for i := range page1 {
		page1[i] = domain.Calendar{ID: "p1", Name: "x", Active: true}
	}
	roster := &fakeRosterClient{pages: map[int]*domain.CalendarPage{
		1: {Items: page1, Page: 1, Limit: limit, TotalItems: limit + 1},
		2: {Items: []domain.Calendar{{ID: "p2", Name: "y", Active: true}}, Page: 2, Limit: limit, TotalItems: limit + 1},
	}}
	uc := NewUseCase(&fakeStore{}, roster, &fakeSeeder{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)})

	require.NoError(t, err)
	assert.Equal(t, 2, roster.calls)
	assert.Len(t, resp.Resources, limit+1)
}

func TestExecute_RosterFailureIsInternal(t *testing.T) {
	roster := &fakeRosterClient{err: errors.New("connection refused")}
	uc := NewUseCase(&fakeStore{}, roster, &fakeSeeder{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestBookCell_RejectsPastCell(t *testing.T) {
	seeder := &fakeSeeder{}
	uc := NewUseCase(&fakeStore{}, singlePageRoster(), seeder, nopLogger{})
	uc.timeProvider = fixedTime{time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)}

	_, err := uc.BookCell(context.Background(), &BookCellRequest{
		CalendarID: "cal1",
		CategoryID: "cat1",
		Service:    domain.Service{ID: "svc1", DurationMinutes: 45},
		Start:      wallTime("2024-03-04", "11:00"),
	})

	assert.ErrorIs(t, err, ErrPastCell)
	assert.Nil(t, seeder.lastReq)
}

func TestBookCell_FutureCellSeedsWizardSession(t *testing.T) {
	seeder := &fakeSeeder{view: &booking_wizard.SessionView{ID: "s1", Step: domain.StepEnterDetails}}
	uc := NewUseCase(&fakeStore{}, singlePageRoster(), seeder, nopLogger{})
	uc.timeProvider = fixedTime{time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)}

	view, err := uc.BookCell(context.Background(), &BookCellRequest{
		CalendarID: "cal1",
		CategoryID: "cat1",
		Service:    domain.Service{ID: "svc1", DurationMinutes: 45},
		Start:      wallTime("2024-03-04", "14:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "s1", view.ID)

	require.NotNil(t, seeder.lastReq)
	assert.Equal(t, "cal1", seeder.lastReq.CalendarID)
	assert.Equal(t, "14:00 - 14:45", seeder.lastReq.Slot.Label)
	assert.Equal(t, "cal1", seeder.lastReq.Slot.CalendarID)
}

func TestBookCell_ValidatesInput(t *testing.T) {
	uc := NewUseCase(&fakeStore{}, singlePageRoster(), &fakeSeeder{}, nopLogger{})

	tests := []struct {
		name string
		req  *BookCellRequest
	}{
		{"missing calendar", &BookCellRequest{Service: domain.Service{ID: "s", DurationMinutes: 45}, Start: wallTime("2024-03-04", "14:00")}},
		{"missing service", &BookCellRequest{CalendarID: "cal1", Start: wallTime("2024-03-04", "14:00")}},
		{"zero duration", &BookCellRequest{CalendarID: "cal1", Service: domain.Service{ID: "s"}, Start: wallTime("2024-03-04", "14:00")}},
		{"missing start", &BookCellRequest{CalendarID: "cal1", Service: domain.Service{ID: "s", DurationMinutes: 45}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.BookCell(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
