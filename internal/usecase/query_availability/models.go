package query_availability

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date     string   // Дата в формате YYYY-MM-DD, трактуется как календарный день в UTC
	Language string   // Язык общения с клиентом
	Products []string // Продукты для консультации (менеджер должен покрывать ВСЕ)
	Rating   string   // Рейтинговая категория клиента
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  time.Time              // Начало запрошенного дня (UTC)
	Slots []domain.AvailableSlot // Доступные слоты по возрастанию времени начала
}
