package get_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingConsole/internal/api/handlers"
	aggregateSlots "github.com/m04kA/SMC-BookingConsole/internal/usecase/aggregate_slots"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams = "параметры date, category_id и service_id обязательны"
)

type Handler struct {
	useCase AggregateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase AggregateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD&category_id=...&service_id=...[&calendar_id=...][&per_resource=true]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req, err := parseQuery(q.Get("date"), q.Get("category_id"), q.Get("service_id"),
		q.Get("calendar_id"), q.Get("per_resource"))
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, aggregateSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /slots - Failed to aggregate slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(result))
}
