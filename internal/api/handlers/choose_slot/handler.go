package choose_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingConsole/internal/api/handlers"
	bookingWizard "github.com/m04kA/SMC-BookingConsole/internal/usecase/booking_wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgServiceRequired    = "сначала выберите услугу"
	msgInvalidStep        = "слот выбирается на шаге выбора времени"
	msgSlotStale          = "выбранный слот больше недоступен, обновите список"
	msgLabelRequired      = "метка слота обязательна"
)

// ChooseSlotRequest HTTP-запрос выбора слота
type ChooseSlotRequest struct {
	Label      string `json:"label"`
	CalendarID string `json:"calendarId,omitempty"`
}

type Handler struct {
	useCase BookingWizardUseCase
	logger  Logger
}

func NewHandler(useCase BookingWizardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req ChooseSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.useCase.ChooseSlot(sessionID, req.Label, req.CalendarID)
	if err != nil {
		switch {
		case errors.Is(err, bookingWizard.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/slot - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, bookingWizard.ErrServiceRequired):
			h.logger.Warn("POST /sessions/{id}/slot - Service not selected: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgServiceRequired)

		case errors.Is(err, bookingWizard.ErrInvalidStep):
			h.logger.Warn("POST /sessions/{id}/slot - Wrong step: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidStep)

		case errors.Is(err, bookingWizard.ErrSlotStale):
			h.logger.Warn("POST /sessions/{id}/slot - Stale slot: session=%s, label=%s", sessionID, req.Label)
			handlers.RespondError(w, http.StatusConflict, msgSlotStale)

		case errors.Is(err, bookingWizard.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/slot - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgLabelRequired)

		default:
			h.logger.Error("POST /sessions/{id}/slot - Failed to choose slot: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.ToSessionResponse(*view))
}
