package profile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestLoad_MissingFileStartsEmpty(t *testing.T) {
	svc := NewService(filepath.Join(t.TempDir(), "profile.json"), nopLogger{})

	require.NoError(t, svc.Load())
	assert.Equal(t, domain.Contact{}, svc.Current())
}

func TestMerge_SavesAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	svc := NewService(path, nopLogger{})
	require.NoError(t, svc.Load())

	require.NoError(t, svc.Merge(domain.Contact{
		ID:        "c1",
		FirstName: "Анна",
		Email:     "anna@example.com",
	}))

	reloaded := NewService(path, nopLogger{})
	require.NoError(t, reloaded.Load())
	current := reloaded.Current()
	assert.Equal(t, "c1", current.ID)
	assert.Equal(t, "Анна", current.FirstName)
	assert.Equal(t, "anna@example.com", current.Email)
}

func TestMerge_EmptyFieldsDoNotOverwrite(t *testing.T) {
	svc := NewService(filepath.Join(t.TempDir(), "profile.json"), nopLogger{})
	require.NoError(t, svc.Load())
	require.NoError(t, svc.Merge(domain.Contact{FirstName: "Анна", Phone: "+79990001122"}))

	require.NoError(t, svc.Merge(domain.Contact{FirstName: "Мария"}))

	current := svc.Current()
	assert.Equal(t, "Мария", current.FirstName)
	assert.Equal(t, "+79990001122", current.Phone)
}

func TestMerge_PasswordNeverPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	svc := NewService(path, nopLogger{})
	require.NoError(t, svc.Load())

	require.NoError(t, svc.Merge(domain.Contact{ID: "c1", Password: "secret123abc"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret123abc")

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "contact")
}

func TestLoad_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	svc := NewService(path, nopLogger{})

	assert.ErrorIs(t, svc.Load(), ErrInternal)
}
