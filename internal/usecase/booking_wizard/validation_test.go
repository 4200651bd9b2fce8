package booking_wizard

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	"github.com/m04kA/SMC-BookingConsole/pkg/ptr"
)

func TestDateDisabled(t *testing.T) {
	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC) // среда

	tests := []struct {
		name     string
		date     time.Time
		disabled bool
	}{
		{"today", time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), false},
		{"future weekday", time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), false},
		{"saturday", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), true},
		{"sunday", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), true},
		{"yesterday", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"next monday", time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.disabled, dateDisabled(tt.date, now))
		})
	}
}

func TestDefaultBookingDate_SkipsWeekend(t *testing.T) {
	friday := time.Date(2024, 3, 8, 18, 0, 0, 0, time.UTC)
	saturday := time.Date(2024, 3, 9, 9, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	nextMonday := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), defaultBookingDate(friday))
	assert.Equal(t, nextMonday, defaultBookingDate(saturday))
	assert.Equal(t, nextMonday, defaultBookingDate(sunday))
}

func TestValidateSubmitExtras_LengthCaps(t *testing.T) {
	ve := validateSubmitExtras(&SubmitRequest{
		Remarks:          ptr.Ptr(strings.Repeat("x", domain.MaxRemarksLength+1)),
		IssueDescription: ptr.Ptr(strings.Repeat("x", domain.MaxIssueDescriptionLength+1)),
	})

	require.NotNil(t, ve)
	assert.Contains(t, ve.Fields, "remarks")
	assert.Contains(t, ve.Fields, "issue_description")

	assert.Nil(t, validateSubmitExtras(&SubmitRequest{
		Remarks: ptr.Ptr(strings.Repeat("x", domain.MaxRemarksLength)),
	}))
}

func TestGeneratePassword(t *testing.T) {
	p1, err := generatePassword(domain.GeneratedPasswordLength)
	require.NoError(t, err)
	p2, err := generatePassword(domain.GeneratedPasswordLength)
	require.NoError(t, err)

	assert.Len(t, p1, domain.GeneratedPasswordLength)
	assert.NotEqual(t, p1, p2)
	for _, r := range p1 {
		assert.Contains(t, passwordAlphabet, string(r))
	}
}
