package update_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingConsole/internal/api/handlers"
	"github.com/m04kA/SMC-BookingConsole/internal/integrations/schedcore"
	"github.com/m04kA/SMC-BookingConsole/internal/service/appointments"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidEndedAt      = "некорректный формат endedAt, ожидается ISO 8601"
	msgAppointmentNotFound = "запись не найдена"
	msgValidationFailed    = "проверьте поля формы"
	msgBackendUnavailable  = "сервис записи временно недоступен, попробуйте позже"
)

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

// Handle PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	patch, err := req.toPatch()
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid endedAt: id=%s, error=%v", appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidEndedAt)
		return
	}

	updated, err := h.service.Update(r.Context(), appointmentID, patch)
	if err != nil {
		if ve, ok := schedcore.AsValidationError(err); ok {
			h.logger.Warn("PUT /appointments/{id} - Rejected by SchedCore: id=%s, fields=%d",
				appointmentID, len(ve.Fields))
			handlers.RespondValidation(w, msgValidationFailed, ve.Fields)
			return
		}

		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Not found: id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, schedcore.ErrUnavailable):
			h.logger.Error("PUT /appointments/{id} - SchedCore unavailable: id=%s, error=%v", appointmentID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBackendUnavailable)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update: id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.ToAppointmentResponse(updated))
}
