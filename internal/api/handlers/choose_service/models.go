package choose_service

import "github.com/m04kA/SMC-BookingConsole/internal/domain"

// ChooseServiceRequest HTTP-запрос выбора услуги
type ChooseServiceRequest struct {
	CategoryID string         `json:"categoryId"`
	Service    ServiceRequest `json:"service"`
}

// ServiceRequest выбранная услуга
type ServiceRequest struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"`
}

func (r *ChooseServiceRequest) toDomain() domain.Service {
	return domain.Service{
		ID:              r.Service.ID,
		CategoryID:      r.CategoryID,
		Name:            r.Service.Name,
		DurationMinutes: r.Service.DurationMinutes,
		Price:           r.Service.Price,
	}
}
