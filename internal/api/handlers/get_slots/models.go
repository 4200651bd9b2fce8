package get_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BookingConsole/internal/api/handlers"
	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	aggregateSlots "github.com/m04kA/SMC-BookingConsole/internal/usecase/aggregate_slots"
)

// GetSlotsResponse HTTP-ответ со свободными слотами на дату
type GetSlotsResponse struct {
	Date  string                  `json:"date"`
	Slots []handlers.SlotResponse `json:"slots"`
}

func parseQuery(date, categoryID, serviceID, calendarID, perResource string) (*aggregateSlots.Request, error) {
	day, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	req := &aggregateSlots.Request{
		Date:        day,
		CategoryID:  categoryID,
		ServiceID:   serviceID,
		PerResource: perResource == "true",
	}
	if calendarID != "" {
		req.CalendarID = &calendarID
	}
	return req, nil
}

func fromUseCaseResponse(resp *aggregateSlots.Response) *GetSlotsResponse {
	return &GetSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: handlers.ToSlotResponses(resp.Slots),
	}
}
