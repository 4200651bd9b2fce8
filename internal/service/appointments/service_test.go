package appointments

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	"github.com/m04kA/SMC-BookingConsole/internal/integrations/schedcore"
	"github.com/m04kA/SMC-BookingConsole/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeClient struct {
	mu sync.Mutex

	rangeItems   []*domain.Appointment
	contactItems map[string][]*domain.Appointment
	updated      *domain.Appointment

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	deletedIDs []string

	flagsDuring  *OpFlags
	flagsService *Service
}

func (c *fakeClient) ListAppointments(_ context.Context, _, _ time.Time) ([]*domain.Appointment, error) {
	if c.flagsService != nil {
		flags := c.flagsService.Flags()
		c.flagsDuring = &flags
	}
	return c.rangeItems, c.listErr
}

func (c *fakeClient) ListAppointmentsByContact(_ context.Context, contactID string) ([]*domain.Appointment, error) {
	return c.contactItems[contactID], c.listErr
}

func (c *fakeClient) CreateAppointment(_ context.Context, _ *schedcore.AppointmentDraft) (*domain.Appointment, error) {
	if c.createErr != nil {
		return nil, c.createErr
	}
	return &domain.Appointment{ID: "created"}, nil
}

func (c *fakeClient) UpdateAppointment(_ context.Context, _ string, _ *schedcore.AppointmentPatch) (*domain.Appointment, error) {
	return c.updated, c.updateErr
}

func (c *fakeClient) DeleteAppointment(_ context.Context, id string) error {
	if c.deleteErr != nil {
		return c.deleteErr
	}
	c.mu.Lock()
	c.deletedIDs = append(c.deletedIDs, id)
	c.mu.Unlock()
	return nil
}

func apt(id, contactID string) *domain.Appointment {
	return &domain.Appointment{
		ID:      id,
		Status:  domain.StatusConfirmed,
		Contact: domain.Contact{ID: contactID},
	}
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestList_CachesAndReturnsCopy(t *testing.T) {
	client := &fakeClient{rangeItems: []*domain.Appointment{apt("a1", "c1"), apt("a2", "c2")}}
	svc := NewService(client, nopLogger{})

	list, err := svc.List(context.Background(), day(4), day(5))

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Len(t, svc.Cached(), 2)

	// Возвращённый срез — копия: мутация у вызывающего не трогает кеш
	list[0] = nil
	assert.NotNil(t, svc.Cached()[0])
}

func TestList_TransportFailureDegradesToEmptySuccess(t *testing.T) {
	client := &fakeClient{
		rangeItems: []*domain.Appointment{apt("a1", "c1")},
		listErr:    errors.New("connection refused"),
	}
	svc := NewService(client, nopLogger{})

	list, err := svc.List(context.Background(), day(4), day(5))

	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, svc.Cached())
}

func TestList_RejectsInvertedRange(t *testing.T) {
	svc := NewService(&fakeClient{}, nopLogger{})

	_, err := svc.List(context.Background(), day(5), day(4))

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListByContact_PopulatesContactView(t *testing.T) {
	client := &fakeClient{contactItems: map[string][]*domain.Appointment{
		"c1": {apt("a1", "c1")},
	}}
	svc := NewService(client, nopLogger{})

	list, err := svc.ListByContact(context.Background(), "c1")

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Len(t, svc.CachedByContact("c1"), 1)
	assert.Empty(t, svc.CachedByContact("c2"))
}

func TestListBusyFlagSetDuringFetch(t *testing.T) {
	client := &fakeClient{rangeItems: []*domain.Appointment{}}
	svc := NewService(client, nopLogger{})
	client.flagsService = svc

	_, err := svc.List(context.Background(), day(4), day(5))

	require.NoError(t, err)
	require.NotNil(t, client.flagsDuring)
	assert.True(t, client.flagsDuring.ListBusy)
	assert.False(t, client.flagsDuring.CreateBusy)
	assert.False(t, svc.Flags().ListBusy)
}

func TestCreate_NeverMutatesCaches(t *testing.T) {
	client := &fakeClient{rangeItems: []*domain.Appointment{apt("a1", "c1")}}
	svc := NewService(client, nopLogger{})
	_, err := svc.List(context.Background(), day(4), day(5))
	require.NoError(t, err)

	created, err := svc.Create(context.Background(), &schedcore.AppointmentDraft{CalendarID: "cal1"})

	require.NoError(t, err)
	assert.Equal(t, "created", created.ID)
	// Кеш остался как был: create не угадывает, попадёт ли запись в фильтр
	cached := svc.Cached()
	require.Len(t, cached, 1)
	assert.Equal(t, "a1", cached[0].ID)
}

func TestUpdate_MergesConfirmedObjectIntoAllViews(t *testing.T) {
	client := &fakeClient{
		rangeItems:   []*domain.Appointment{apt("a1", "c1"), apt("a2", "c2")},
		contactItems: map[string][]*domain.Appointment{"c1": {apt("a1", "c1")}},
	}
	svc := NewService(client, nopLogger{})
	_, err := svc.List(context.Background(), day(4), day(5))
	require.NoError(t, err)
	_, err = svc.ListByContact(context.Background(), "c1")
	require.NoError(t, err)

	updated := apt("a1", "c1")
	updated.Remarks = ptr.Ptr("done")
	client.updated = updated

	result, err := svc.Update(context.Background(), "a1", &schedcore.AppointmentPatch{Remarks: ptr.Ptr("done")})

	require.NoError(t, err)
	require.NotNil(t, result.Remarks)

	cached := svc.Cached()
	require.Len(t, cached, 2)
	require.NotNil(t, cached[0].Remarks)
	assert.Equal(t, "done", *cached[0].Remarks)

	byContact := svc.CachedByContact("c1")
	require.Len(t, byContact, 1)
	require.NotNil(t, byContact[0].Remarks)
}

func TestUpdate_UnmatchedIDSilentlyDropped(t *testing.T) {
	client := &fakeClient{rangeItems: []*domain.Appointment{apt("a1", "c1")}}
	svc := NewService(client, nopLogger{})
	_, err := svc.List(context.Background(), day(4), day(5))
	require.NoError(t, err)

	client.updated = apt("a9", "c9") // в кеше такого id нет

	result, err := svc.Update(context.Background(), "a9", &schedcore.AppointmentPatch{})

	// Сетевой вызов успешен, кеш не изменился
	require.NoError(t, err)
	assert.Equal(t, "a9", result.ID)
	cached := svc.Cached()
	require.Len(t, cached, 1)
	assert.Equal(t, "a1", cached[0].ID)
}

func TestUpdate_NotFoundMapped(t *testing.T) {
	client := &fakeClient{updateErr: schedcore.ErrAppointmentNotFound}
	svc := NewService(client, nopLogger{})

	_, err := svc.Update(context.Background(), "a1", &schedcore.AppointmentPatch{})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete_RemovesFromAllViewsAfterConfirmation(t *testing.T) {
	client := &fakeClient{
		rangeItems:   []*domain.Appointment{apt("a1", "c1"), apt("a2", "c2")},
		contactItems: map[string][]*domain.Appointment{"c1": {apt("a1", "c1")}},
	}
	svc := NewService(client, nopLogger{})
	_, err := svc.List(context.Background(), day(4), day(5))
	require.NoError(t, err)
	_, err = svc.ListByContact(context.Background(), "c1")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "a1"))

	cached := svc.Cached()
	require.Len(t, cached, 1)
	assert.Equal(t, "a2", cached[0].ID)
	assert.Empty(t, svc.CachedByContact("c1"))
	assert.Equal(t, []string{"a1"}, client.deletedIDs)
}

func TestDelete_FailureLeavesCachesUntouched(t *testing.T) {
	client := &fakeClient{rangeItems: []*domain.Appointment{apt("a1", "c1")}}
	svc := NewService(client, nopLogger{})
	_, err := svc.List(context.Background(), day(4), day(5))
	require.NoError(t, err)

	client.deleteErr = errors.New("connection reset")

	err = svc.Delete(context.Background(), "a1")

	assert.Error(t, err)
	require.Len(t, svc.Cached(), 1)
}

func TestDelete_NotFoundMapped(t *testing.T) {
	client := &fakeClient{deleteErr: schedcore.ErrAppointmentNotFound}
	svc := NewService(client, nopLogger{})

	err := svc.Delete(context.Background(), "a1")

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
