package get_calendar_view

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-BookingConsole/internal/api/handlers"
	"github.com/m04kA/SMC-BookingConsole/internal/domain"
	calendarView "github.com/m04kA/SMC-BookingConsole/internal/usecase/calendar_view"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidOffset = "некорректное смещение, ожидается целое число минут"
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

// Handle GET /api/v1/calendar-view?date=YYYY-MM-DD&offset=120
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, q.Get("date"))
	if err != nil {
		h.logger.Warn("GET /calendar-view - Invalid date: %q", q.Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	offset := 0
	if raw := q.Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /calendar-view - Invalid offset: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidOffset)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &calendarView.Request{
		Date:          date,
		OffsetMinutes: offset,
	})
	if err != nil {
		switch {
		case errors.Is(err, calendarView.ErrInvalidInput):
			h.logger.Warn("GET /calendar-view - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /calendar-view - Failed to build view: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(result))
}
