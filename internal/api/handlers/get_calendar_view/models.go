package get_calendar_view

import (
	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	calendarView "github.com/m04kA/SMC-BookingConsole/internal/usecase/calendar_view"
	"github.com/m04kA/SMC-BookingConsole/pkg/wallclock"
)

// ResourceResponse колонка ресурса календарной сетки
type ResourceResponse struct {
	ResourceID    string `json:"resourceId"`
	ResourceTitle string `json:"resourceTitle"`
}

// EventResponse событие календарной сетки; start/end уже сдвинуты
// на смещение зрителя
type EventResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Start      string `json:"start"`
	End        string `json:"end"`
	ResourceID string `json:"resourceId"`
	Status     string `json:"status"`
}

// GetCalendarViewResponse HTTP-ответ: дневная многоресурсная сетка
type GetCalendarViewResponse struct {
	Date      string             `json:"date"`
	Resources []ResourceResponse `json:"resources"`
	Events    []EventResponse    `json:"events"`
}

func fromUseCaseResponse(resp *calendarView.Response) *GetCalendarViewResponse {
	out := &GetCalendarViewResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		Resources: make([]ResourceResponse, 0, len(resp.Resources)),
		Events:    make([]EventResponse, 0, len(resp.Events)),
	}
	for _, res := range resp.Resources {
		out.Resources = append(out.Resources, ResourceResponse{
			ResourceID:    res.ResourceID,
			ResourceTitle: res.ResourceTitle,
		})
	}
	for _, ev := range resp.Events {
		out.Events = append(out.Events, EventResponse{
			ID:         ev.ID,
			Title:      ev.Title,
			Start:      wallclock.FormatInstant(ev.Start),
			End:        wallclock.FormatInstant(ev.End),
			ResourceID: ev.ResourceID,
			Status:     string(ev.Status),
		})
	}
	return out
}
