package query_availability

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	queryAvailability "github.com/m04kA/SMC-CalendarService/internal/usecase/query_availability"
)

// QueryRequest HTTP request model
type QueryRequest struct {
	Date     string   `json:"date"`
	Products []string `json:"products"`
	Language string   `json:"language"`
	Rating   string   `json:"rating"`
}

// AvailableSlotResponse модель одной записи отчета доступности
type AvailableSlotResponse struct {
	StartDate      string `json:"start_date"`
	AvailableCount int    `json:"available_count"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *QueryRequest) ToUseCaseRequest() *queryAvailability.Request {
	return &queryAvailability.Request{
		Date:     r.Date,
		Language: r.Language,
		Products: r.Products,
		Rating:   r.Rating,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Момент начала сериализуется в UTC с миллисекундной точностью
func FromUseCaseResponse(resp *queryAvailability.Response) []AvailableSlotResponse {
	slots := make([]AvailableSlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlotResponse{
			StartDate:      slot.StartDate.UTC().Format(domain.TimestampFormat),
			AvailableCount: slot.AvailableCount,
		}
	}
	return slots
}
