package jump_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingConsole/internal/api/handlers"
	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	bookingWizard "github.com/m04kA/SMC-BookingConsole/internal/usecase/booking_wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgServiceRequired    = "сначала выберите услугу"
	msgSlotRequired       = "сначала выберите слот"
	msgInvalidStep        = "недопустимый шаг"
)

// JumpStepRequest HTTP-запрос перехода на шаг
type JumpStepRequest struct {
	Step int `json:"step"`
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

// Handle POST /api/v1/sessions/{sessionId}/step
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req JumpStepRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/step - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.useCase.JumpToStep(sessionID, domain.Step(req.Step))
	if err != nil {
		switch {
		case errors.Is(err, bookingWizard.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/step - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, bookingWizard.ErrServiceRequired):
			h.logger.Warn("POST /sessions/{id}/step - Service not selected: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgServiceRequired)

		case errors.Is(err, bookingWizard.ErrSlotRequired):
			h.logger.Warn("POST /sessions/{id}/step - Slot not selected: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgSlotRequired)

		case errors.Is(err, bookingWizard.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/step - Unknown step: session=%s, step=%d", sessionID, req.Step)
			handlers.RespondBadRequest(w, msgInvalidStep)

		default:
			h.logger.Error("POST /sessions/{id}/step - Failed to jump: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.ToSessionResponse(*view))
}
