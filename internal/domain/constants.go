package domain

import "time"

// Time format constants
const (
	DateFormat      = "2006-01-02"               // YYYY-MM-DD
	TimestampFormat = "2006-01-02T15:04:05.000Z" // UTC instant с миллисекундной точностью
)

// DayDuration длина календарного дня
// Окно выборки слотов полуоткрытое: [начало дня, начало дня + DayDuration)
const DayDuration = 24 * time.Hour
