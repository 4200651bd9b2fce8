package list_appointments

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-BookingConsole/internal/api/handlers"
	"github.com/m04kA/SMC-BookingConsole/internal/domain"
)

const (
	msgInvalidRange = "некорректный диапазон, ожидается start=YYYY-MM-DD&end=YYYY-MM-DD либо contact_id"
)

// ListAppointmentsResponse HTTP-ответ со списком записей
type ListAppointmentsResponse struct {
	Appointments []handlers.AppointmentResponse `json:"appointments"`
}

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?start=YYYY-MM-DD&end=YYYY-MM-DD
// либо GET /api/v1/appointments?contact_id=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// Транспортные сбои сервис деградирует до пустого списка, поэтому
	// обе ветки отвечают 200 даже при недоступном SchedCore
	if contactID := q.Get("contact_id"); contactID != "" {
		list, err := h.service.ListByContact(r.Context(), contactID)
		if err != nil {
			h.logger.Error("GET /appointments - Failed to list by contact: contact=%s, error=%v", contactID, err)
			handlers.RespondInternalError(w)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, ListAppointmentsResponse{
			Appointments: handlers.ToAppointmentResponses(list),
		})
		return
	}

	start, errStart := time.Parse(domain.DateFormat, q.Get("start"))
	end, errEnd := time.Parse(domain.DateFormat, q.Get("end"))
	if errStart != nil || errEnd != nil || end.Before(start) {
		h.logger.Warn("GET /appointments - Invalid range: start=%q, end=%q", q.Get("start"), q.Get("end"))
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	list, err := h.service.List(r.Context(), start, end)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ListAppointmentsResponse{
		Appointments: handlers.ToAppointmentResponses(list),
	})
}
