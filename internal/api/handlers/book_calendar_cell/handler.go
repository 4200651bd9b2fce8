package book_calendar_cell

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingConsole/internal/api/handlers"
	calendarView "github.com/m04kA/SMC-BookingConsole/internal/usecase/calendar_view"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStart       = "некорректный формат start, ожидается ISO 8601"
	msgPastCell           = "нельзя создать запись в прошлом"
	msgInvalidInput       = "календарь, услуга и время начала обязательны"
)

type Handler struct {
	useCase CalendarViewUseCase
	logger  Logger
}

func NewHandler(useCase CalendarViewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/calendar-view/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookCellRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar-view/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.toUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /calendar-view/book - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	view, err := h.useCase.BookCell(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, calendarView.ErrPastCell):
			h.logger.Warn("POST /calendar-view/book - Past cell: calendar=%s, start=%s",
				req.CalendarID, req.Start)
			handlers.RespondError(w, http.StatusConflict, msgPastCell)

		case errors.Is(err, calendarView.ErrInvalidInput):
			h.logger.Warn("POST /calendar-view/book - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /calendar-view/book - Failed to seed session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, handlers.ToSessionResponse(*view))
}
