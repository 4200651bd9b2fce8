package cancel_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingConsole/internal/api/handlers"
	bookingWizard "github.com/m04kA/SMC-BookingConsole/internal/usecase/booking_wizard"
)

const (
	msgSessionNotFound = "сессия не найдена или истекла"
)

// CancelSessionResponse HTTP-ответ об уничтожении сессии
type CancelSessionResponse struct {
	Status string `json:"status"`
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

// Handle DELETE /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.useCase.CancelSession(sessionID); err != nil {
		switch {
		case errors.Is(err, bookingWizard.ErrSessionNotFound):
			h.logger.Warn("DELETE /sessions/{id} - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("DELETE /sessions/{id} - Failed to cancel: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CancelSessionResponse{Status: "success"})
}
