package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingConsole/internal/api/handlers"
	"github.com/m04kA/SMC-BookingConsole/internal/integrations/schedcore"
	bookingWizard "github.com/m04kA/SMC-BookingConsole/internal/usecase/booking_wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgInvalidStep        = "отправка доступна только на шаге ввода данных"
	msgSlotRequired       = "сначала выберите слот"
	msgServiceRequired    = "сначала выберите услугу"
	msgValidationFailed   = "проверьте поля формы"
	msgBackendUnavailable = "сервис записи временно недоступен, попробуйте позже"
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

// Handle POST /api/v1/sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Submit(r.Context(), req.toUseCaseRequest(sessionID))
	if err != nil {
		// Локальная валидация и отказ SchedCore несут сообщения по полям:
		// оба отдаются клиенту в одном формате errorValidation.fields
		if ve, ok := bookingWizard.AsValidationError(err); ok {
			h.logger.Warn("POST /sessions/{id}/submit - Local validation failed: session=%s, fields=%d",
				sessionID, len(ve.Fields))
			handlers.RespondValidation(w, msgValidationFailed, ve.Fields)
			return
		}
		if ve, ok := schedcore.AsValidationError(err); ok {
			h.logger.Warn("POST /sessions/{id}/submit - Rejected by SchedCore: session=%s, fields=%d",
				sessionID, len(ve.Fields))
			handlers.RespondValidation(w, msgValidationFailed, ve.Fields)
			return
		}

		switch {
		case errors.Is(err, bookingWizard.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/submit - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, bookingWizard.ErrInvalidStep):
			h.logger.Warn("POST /sessions/{id}/submit - Wrong step: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidStep)

		case errors.Is(err, bookingWizard.ErrSlotRequired):
			h.logger.Warn("POST /sessions/{id}/submit - Slot not selected: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgSlotRequired)

		case errors.Is(err, bookingWizard.ErrServiceRequired):
			h.logger.Warn("POST /sessions/{id}/submit - Service not selected: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgServiceRequired)

		case errors.Is(err, schedcore.ErrUnavailable):
			h.logger.Error("POST /sessions/{id}/submit - SchedCore unavailable: session=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBackendUnavailable)

		default:
			h.logger.Error("POST /sessions/{id}/submit - Failed to submit: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, fromUseCaseResponse(result))
}
