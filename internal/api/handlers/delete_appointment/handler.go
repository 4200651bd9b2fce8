package delete_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingConsole/internal/api/handlers"
	"github.com/m04kA/SMC-BookingConsole/internal/api/middleware"
	"github.com/m04kA/SMC-BookingConsole/internal/integrations/schedcore"
	"github.com/m04kA/SMC-BookingConsole/internal/service/appointments"
)

const (
	msgAppointmentNotFound = "запись не найдена"
	msgBackendUnavailable  = "сервис записи временно недоступен, попробуйте позже"
)

// DeleteAppointmentResponse HTTP-ответ об удалении записи
type DeleteAppointmentResponse struct {
	Status string `json:"status"`
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

// Handle DELETE /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	userID, _ := middleware.UserID(r.Context())

	if err := h.service.Delete(r.Context(), appointmentID); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Not found: id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, schedcore.ErrUnavailable):
			h.logger.Error("DELETE /appointments/{id} - SchedCore unavailable: id=%s, error=%v", appointmentID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBackendUnavailable)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to delete: id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Deleted: id=%s, user=%s", appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, DeleteAppointmentResponse{Status: "success"})
}
