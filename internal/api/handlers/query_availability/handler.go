package query_availability

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	queryAvailability "github.com/m04kA/SMC-CalendarService/internal/usecase/query_availability"
)

const (
	msgInvalidBody  = "некорректное тело запроса, ожидается JSON"
	msgInvalidInput = "некорректные параметры запроса"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase QueryAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase QueryAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /calendar/query
// Body: {"date": "YYYY-MM-DD", "products": [...], "language": "...", "rating": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /calendar/query - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, queryAvailability.ErrInvalidDate):
			h.logger.Warn("POST /calendar/query - Invalid date: date=%q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, queryAvailability.ErrInvalidInput):
			h.logger.Warn("POST /calendar/query - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /calendar/query - Failed to query availability: date=%q, error=%v",
				req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /calendar/query - Availability resolved: date=%q, entries=%d",
		req.Date, len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
