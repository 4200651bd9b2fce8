package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// record формат файла профиля
type record struct {
	Contact   storedContact `json:"contact"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type storedContact struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Street    string `json:"street,omitempty"`
	Zip       string `json:"zip,omitempty"`
	City      string `json:"city,omitempty"`
}

// Service хранит единственную запись профиля контакта в JSON-файле.
// Явный сервис вместо неявного side-channel: загрузка на старте,
// сохранение после операций, меняющих профиль (бронирование, правка).
// Пароль контакта в файл никогда не попадает.
type Service struct {
	path   string
	logger Logger

	mu      sync.Mutex
	current domain.Contact
	loaded  bool
}

// NewService создает сервис профиля поверх файла path
func NewService(path string, logger Logger) *Service {
	return &Service{path: path, logger: logger}
}

// Load читает профиль с диска. Отсутствующий файл — пустой профиль,
// не ошибка.
func (s *Service) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("Load: no profile at %s, starting empty", s.path)
			s.loaded = true
			return nil
		}
		return fmt.Errorf("%w: failed to read %s: %v", ErrInternal, s.path, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("%w: failed to parse %s: %v", ErrInternal, s.path, err)
	}

	s.current = domain.Contact{
		ID:        rec.Contact.ID,
		FirstName: rec.Contact.FirstName,
		LastName:  rec.Contact.LastName,
		Email:     rec.Contact.Email,
		Phone:     rec.Contact.Phone,
		Street:    rec.Contact.Street,
		Zip:       rec.Contact.Zip,
		City:      rec.Contact.City,
	}
	s.loaded = true

	s.logger.Info("Load: profile loaded for contact id=%s", s.current.ID)
	return nil
}

// Current возвращает копию текущего профиля для предзаполнения форм
func (s *Service) Current() domain.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Merge сливает непустые поля контакта в профиль и сохраняет его.
// Вызывается после успешного бронирования, чтобы возвращающийся клиент
// получал предзаполненные поля.
func (s *Service) Merge(contact domain.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mergeField(&s.current.ID, contact.ID)
	mergeField(&s.current.FirstName, contact.FirstName)
	mergeField(&s.current.LastName, contact.LastName)
	mergeField(&s.current.Email, contact.Email)
	mergeField(&s.current.Phone, contact.Phone)
	mergeField(&s.current.Street, contact.Street)
	mergeField(&s.current.Zip, contact.Zip)
	mergeField(&s.current.City, contact.City)

	if err := s.save(); err != nil {
		return err
	}

	s.logger.Info("Merge: profile saved for contact id=%s", s.current.ID)
	return nil
}

// save пишет профиль атомарно: во временный файл с последующим rename
func (s *Service) save() error {
	rec := record{
		Contact: storedContact{
			ID:        s.current.ID,
			FirstName: s.current.FirstName,
			LastName:  s.current.LastName,
			Email:     s.current.Email,
			Phone:     s.current.Phone,
			Street:    s.current.Street,
			Zip:       s.current.Zip,
			City:      s.current.City,
		},
		UpdatedAt: time.Now().UTC(),
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal profile: %v", ErrInternal, err)
	}

	tmp := filepath.Join(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp")
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("%w: failed to write %s: %v", ErrInternal, tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: failed to replace %s: %v", ErrInternal, s.path, err)
	}

	return nil
}

func mergeField(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}
