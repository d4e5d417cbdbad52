package query_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// UseCase use case для получения доступных слотов календаря
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Пайплайн чисто читающий: нормализация даты → выборка слотов дня →
// фильтрация по способностям менеджера → исключение конфликтов →
// агрегация по времени начала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QueryAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("QueryAvailability: date=%s, language=%s, products=%v, rating=%s",
		req.Date, req.Language, req.Products, req.Rating)

	// 2. Нормализуем дату в полуоткрытое окно дня [startOfDay, startOfDay + 24h)
	startOfDay, err := parseDate(req.Date)
	if err != nil {
		uc.logger.Warn("QueryAvailability: date parsing failed: %v", err)
		return nil, err
	}
	endOfDay := startOfDay.Add(domain.DayDuration)

	// 3. Получаем ВСЕ слоты дня (свободные и забронированные) со снапшотами менеджеров
	// Единственная точка I/O: отмена контекста действует только здесь
	allSlots, err := uc.slotRepo.GetByWindow(ctx, startOfDay, endOfDay)
	if err != nil {
		uc.logger.Error("QueryAvailability: failed to fetch slots for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to fetch slots: %v", ErrInternal, err)
	}

	// 4. Оставляем свободные слоты менеджеров, подходящих под все критерии
	eligible := filterEligible(allSlots, req)

	// 5. Исключаем слоты, пересекающиеся с бронированиями того же менеджера
	available := resolveConflicts(eligible, allSlots)

	// 6. Группируем по времени начала и сортируем по возрастанию
	slots := aggregate(available)

	uc.logger.Info("QueryAvailability: date=%s, fetched=%d, eligible=%d, available=%d, groups=%d",
		req.Date, len(allSlots), len(eligible), len(available), len(slots))

	return &Response{
		Date:  startOfDay,
		Slots: slots,
	}, nil
}
