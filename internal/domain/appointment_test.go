package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentIsActive(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Appointment{Status: StatusInProgress}).IsActive())
	assert.True(t, (&Appointment{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCancelled}).IsActive())
}

func TestAppointmentCanBeAnnotated(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusConfirmed}).CanBeAnnotated())
	assert.True(t, (&Appointment{Status: StatusInProgress}).CanBeAnnotated())
	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeAnnotated())
	assert.False(t, (&Appointment{Status: StatusCancelled}).CanBeAnnotated())
}

func TestContactFullName(t *testing.T) {
	assert.Equal(t, "Анна Иванова", (&Contact{FirstName: "Анна", LastName: "Иванова"}).FullName())
	assert.Equal(t, "Анна", (&Contact{FirstName: "Анна"}).FullName())
	assert.Equal(t, "Иванова", (&Contact{LastName: "Иванова"}).FullName())
}

func TestDisplaySlotLabels(t *testing.T) {
	slot := DisplaySlot{Label: "08:00 - 08:45"}
	assert.Equal(t, "08:00", slot.StartLabel())
	assert.Equal(t, "08:45", slot.EndLabel())
}

func TestCalendarPageHasMore(t *testing.T) {
	assert.True(t, (&CalendarPage{Page: 1, Limit: 50, TotalItems: 51}).HasMore())
	assert.False(t, (&CalendarPage{Page: 2, Limit: 50, TotalItems: 51}).HasMore())
	assert.False(t, (&CalendarPage{Page: 1, Limit: 0, TotalItems: 10}).HasMore())
}

func TestStep(t *testing.T) {
	assert.True(t, StepSelectService.Valid())
	assert.True(t, StepEnterDetails.Valid())
	assert.False(t, Step(3).Valid())
	assert.Equal(t, "select_slot", StepSelectSlot.String())
}
