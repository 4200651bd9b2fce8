package choose_service

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
	msgServiceRequired    = "категория и услуга обязательны"
)

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

// Handle POST /api/v1/sessions/{sessionId}/service
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req ChooseServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/service - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.useCase.ChooseService(r.Context(), sessionID, req.CategoryID, req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, bookingWizard.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/service - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, bookingWizard.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/service - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgServiceRequired)

		default:
			h.logger.Error("POST /sessions/{id}/service - Failed to choose service: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.ToSessionResponse(*view))
}
