package start_session

import (
	"net/http"

	"github.com/m04kA/SMC-BookingConsole/internal/api/handlers"
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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	view := h.useCase.StartSession()
	handlers.RespondJSON(w, http.StatusCreated, handlers.ToSessionResponse(*view))
}
