package aggregate_slots

import (
	"time"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
)

// Request модель запроса на агрегацию слотов
type Request struct {
	Date       time.Time // Дата, на которую запрашиваются окна
	CategoryID string    // ID категории
	ServiceID  string    // ID услуги
	CalendarID *string   // Закреплённый ресурс (опционально)

	// PerResource переключает область дедупликации: false — глобальная
	// (клиентский список, ресурс у метки отбрасывается, первый владелец
	// побеждает), true — боковая панель администратора, одинаковые окна
	// разных сотрудников остаются каждое со своим employee_name.
	PerResource bool
}

// Response модель ответа со списком отображаемых слотов
type Response struct {
	Date  time.Time            // Дата запроса
	Slots []domain.DisplaySlot // Дедуплицированный отсортированный список
}
