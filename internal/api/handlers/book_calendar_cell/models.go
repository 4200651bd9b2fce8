package book_calendar_cell

import (
	"fmt"

	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	calendarView "github.com/m04kA/SMC-BookingConsole/internal/usecase/calendar_view"
	"github.com/m04kA/SMC-BookingConsole/pkg/wallclock"
)

// BookCellRequest HTTP-запрос посева сессии из клика по пустой ячейке
type BookCellRequest struct {
	CalendarID string         `json:"calendarId"`
	CategoryID string         `json:"categoryId"`
	Service    ServiceRequest `json:"service"`

	// Start начало ячейки в той же wall-clock-как-UTC конвенции,
	// что и окна SchedCore
	Start string `json:"start"`
}

// ServiceRequest услуга админского потока
type ServiceRequest struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"`
}

func (r *BookCellRequest) toUseCaseRequest() (*calendarView.BookCellRequest, error) {
	start, err := wallclock.ParseInstant(r.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start %q: %w", r.Start, err)
	}
	return &calendarView.BookCellRequest{
		CalendarID: r.CalendarID,
		CategoryID: r.CategoryID,
		Service: domain.Service{
			ID:              r.Service.ID,
			CategoryID:      r.CategoryID,
			Name:            r.Service.Name,
			DurationMinutes: r.Service.DurationMinutes,
			Price:           r.Service.Price,
		},
		Start: start,
	}, nil
}
