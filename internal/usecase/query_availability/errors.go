package query_availability

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствующем запросе или некорректных полях
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается, когда дата не соответствует формату YYYY-MM-DD
	// или не является существующей календарной датой
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInternal возвращается при внутренних ошибках usecase (например, недоступности хранилища)
	ErrInternal = errors.New("usecase: internal error")
)
