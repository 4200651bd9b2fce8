package get_store_status

import (
	"net/http"

	"github.com/m04kA/SMC-BookingConsole/internal/api/handlers"
	"github.com/m04kA/SMC-BookingConsole/internal/domain"
)

// OpFlagsResponse независимые busy-флаги операций хранилища
type OpFlagsResponse struct {
	ListBusy   bool `json:"listBusy"`
	CreateBusy bool `json:"createBusy"`
	UpdateBusy bool `json:"updateBusy"`
	DeleteBusy bool `json:"deleteBusy"`
}

// StoreStatusResponse снимок локального кеша записей
type StoreStatusResponse struct {
	Flags        OpFlagsResponse                `json:"flags"`
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

// Handle GET /api/v1/appointments/status[?contact_id=...]
//
// Читает только локальный кеш: консоль опрашивает его между операциями,
// чтобы показывать индикаторы list/create/update/delete, не трогая сеть.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flags := h.service.Flags()

	var cached []*domain.Appointment
	if contactID := r.URL.Query().Get("contact_id"); contactID != "" {
		cached = h.service.CachedByContact(contactID)
	} else {
		cached = h.service.Cached()
	}

	handlers.RespondJSON(w, http.StatusOK, StoreStatusResponse{
		Flags: OpFlagsResponse{
			ListBusy:   flags.ListBusy,
			CreateBusy: flags.CreateBusy,
			UpdateBusy: flags.UpdateBusy,
			DeleteBusy: flags.DeleteBusy,
		},
		Appointments: handlers.ToAppointmentResponses(cached),
	})
}
