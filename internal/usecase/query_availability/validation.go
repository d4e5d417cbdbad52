package query_availability

import (
	"fmt"
	"regexp"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// datePattern строгий шаблон даты YYYY-MM-DD
// time.Parse сам по себе принимает незаполненные нулями числа ("2024-5-3"),
// поэтому формат дополнительно проверяется шаблоном
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validateRequest валидирует входные данные запроса
// Пустой список продуктов отклоняется здесь: сам фильтр трактует его как
// "подходит любой менеджер", что для вызывающей стороны почти наверняка ошибка
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: query is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Language == "" {
		return fmt.Errorf("%w: language is required", ErrInvalidInput)
	}

	if len(req.Products) == 0 {
		return fmt.Errorf("%w: at least one product must be specified", ErrInvalidInput)
	}

	for _, p := range req.Products {
		if p == "" {
			return fmt.Errorf("%w: product must not be empty", ErrInvalidInput)
		}
	}

	if req.Rating == "" {
		return fmt.Errorf("%w: rating is required", ErrInvalidInput)
	}

	return nil
}

// parseDate парсит дату запроса и возвращает начало календарного дня в UTC
// Дата без смещения часового пояса, несуществующие даты (2024-02-30) отклоняются
func parseDate(date string) (time.Time, error) {
	if !datePattern.MatchString(date) {
		return time.Time{}, fmt.Errorf("%w: expected YYYY-MM-DD, got %q", ErrInvalidDate, date)
	}

	parsed, err := time.ParseInLocation(domain.DateFormat, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	return parsed, nil
}
