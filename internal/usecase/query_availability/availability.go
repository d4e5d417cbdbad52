package query_availability

import (
	"sort"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// filterEligible оставляет только свободные слоты, чей менеджер удовлетворяет
// ВСЕМ критериям запроса:
// - владеет языком запроса
// - покрывает ВЕСЬ список продуктов (конъюнкция, не пересечение)
// - работает с рейтинговой категорией клиента
// Сравнение строк точное, с учетом регистра
func filterEligible(slots []*domain.Slot, req *Request) []*domain.Slot {
	eligible := make([]*domain.Slot, 0, len(slots))

	for _, s := range slots {
		if !s.IsFree() {
			continue
		}
		if !s.SalesManager.CanServe(req.Language, req.Products, req.Rating) {
			continue
		}
		eligible = append(eligible, s)
	}

	return eligible
}

// resolveConflicts исключает свободные слоты, пересекающиеся с забронированным
// слотом ТОГО ЖЕ менеджера
//
// Календарь менеджера может состоять из записей разной гранулярности: мелкий
// свободный слот и накрывающий его крупный забронированный блок. Любое реальное
// пересечение с забронированной записью владельца означает, что менеджер занят,
// даже если сам свободный слот не помечен как booked
//
// Забронированные слоты предварительно группируются по менеджеру, чтобы каждый
// свободный слот сверялся только с бронированиями своего владельца
func resolveConflicts(eligible []*domain.Slot, allSlots []*domain.Slot) []*domain.Slot {
	bookedByManager := make(map[int64][]*domain.Slot)
	for _, s := range allSlots {
		if s.Booked {
			bookedByManager[s.SalesManagerID] = append(bookedByManager[s.SalesManagerID], s)
		}
	}

	available := make([]*domain.Slot, 0, len(eligible))

	for _, s := range eligible {
		conflict := false
		for _, booked := range bookedByManager[s.SalesManagerID] {
			if s.Overlaps(booked) {
				conflict = true
				break
			}
		}
		if !conflict {
			available = append(available, s)
		}
	}

	return available
}

// aggregate группирует слоты по точному моменту начала и возвращает отчет
// доступности по возрастанию времени начала
//
// Группировка с точностью до наносекунды: слоты, начинающиеся с разницей
// в один тик, попадают в разные группы
func aggregate(slots []*domain.Slot) []domain.AvailableSlot {
	groups := make(map[int64]*domain.AvailableSlot)
	for _, s := range slots {
		key := s.StartDate.UnixNano()
		if g, ok := groups[key]; ok {
			g.AvailableCount++
			continue
		}
		groups[key] = &domain.AvailableSlot{
			StartDate:      s.StartDate,
			AvailableCount: 1,
		}
	}

	result := make([]domain.AvailableSlot, 0, len(groups))
	for _, g := range groups {
		result = append(result, *g)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartDate.Before(result[j].StartDate)
	})

	return result
}
