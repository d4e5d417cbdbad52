package domain

import "time"

// Slot represents a single time interval in a sales manager's calendar.
// A slot is either free (bookable) or already booked; the core only reads
// slots, it never creates or mutates them.
type Slot struct {
	ID             int64
	SalesManagerID int64
	StartDate      time.Time // UTC
	EndDate        time.Time // UTC, всегда строго позже StartDate
	Booked         bool

	// SalesManager снапшот способностей владельца слота на момент выборки
	SalesManager *SalesManager
}

// IsFree returns true if the slot is open for booking
func (s *Slot) IsFree() bool {
	return !s.Booked
}

// Overlaps проверяет РЕАЛЬНОЕ пересечение временных интервалов двух слотов
// Интервалы пересекаются, только если:
// - начало другого слота СТРОГО раньше конца этого И
// - конец другого слота СТРОГО позже начала этого
//
// Используем строгие неравенства (Before, After), чтобы граничные случаи не считались пересечением:
// - Слот 09:00-10:00, слот 09:30-10:30 → ЕСТЬ пересечение (09:30-10:00)
// - Слот 09:00-10:00, слот 10:00-11:00 → НЕТ пересечения (граничат)
func (s *Slot) Overlaps(other *Slot) bool {
	return other.StartDate.Before(s.EndDate) && other.EndDate.After(s.StartDate)
}

// AvailableSlot represents one entry of the availability report:
// a start instant and the number of free slot records starting at it
type AvailableSlot struct {
	StartDate      time.Time
	AvailableCount int
}
