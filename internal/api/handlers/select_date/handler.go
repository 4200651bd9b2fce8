package select_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingConsole/internal/api/handlers"
	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	bookingWizard "github.com/m04kA/SMC-BookingConsole/internal/usecase/booking_wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgServiceRequired    = "сначала выберите услугу"
	msgDateNotSelectable  = "дата недоступна для записи"
)

// SelectDateRequest HTTP-запрос выбора даты
type SelectDateRequest struct {
	Date string `json:"date"`
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

// Handle POST /api/v1/sessions/{sessionId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/date - Invalid date: session=%s, date=%q", sessionID, req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	view, err := h.useCase.SelectDate(r.Context(), sessionID, date)
	if err != nil {
		switch {
		case errors.Is(err, bookingWizard.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/date - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, bookingWizard.ErrServiceRequired):
			h.logger.Warn("POST /sessions/{id}/date - Service not selected: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgServiceRequired)

		case errors.Is(err, bookingWizard.ErrDateNotSelectable):
			h.logger.Warn("POST /sessions/{id}/date - Date not selectable: session=%s, date=%s", sessionID, req.Date)
			handlers.RespondBadRequest(w, msgDateNotSelectable)

		default:
			h.logger.Error("POST /sessions/{id}/date - Failed to select date: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.ToSessionResponse(*view))
}
