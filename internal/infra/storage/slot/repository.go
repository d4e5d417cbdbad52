package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения слотов календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByWindow получает ВСЕ слоты (свободные и забронированные), начало которых
// попадает в полуоткрытое окно [from, to), вместе со снапшотом способностей
// менеджера-владельца
//
// Границы окна сравниваются по start_date: слот, начавшийся до окна и
// заканчивающийся внутри него, в выборку не попадает
func (r *Repository) GetByWindow(ctx context.Context, from, to time.Time) ([]*domain.Slot, error) {
	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.start_date",
		"s.end_date",
		"s.booked",
		"s.sales_manager_id",
		"m.name",
		"m.languages",
		"m.products",
		"m.customer_ratings",
	).
		From("slots s").
		Join("sales_managers m ON m.id = s.sales_manager_id").
		Where(squirrel.GtOrEq{"s.start_date": from}).
		Where(squirrel.Lt{"s.start_date": to}).
		OrderBy("s.start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var (
			s         domain.Slot
			manager   domain.SalesManager
			languages []string
			products  []string
			ratings   []string
		)

		err := rows.Scan(
			&s.ID,
			&s.StartDate,
			&s.EndDate,
			&s.Booked,
			&s.SalesManagerID,
			&manager.Name,
			pq.Array(&languages),
			pq.Array(&products),
			pq.Array(&ratings),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		// Нормализуем время к UTC: timestamptz приходит в локальной зоне соединения
		s.StartDate = s.StartDate.UTC()
		s.EndDate = s.EndDate.UTC()

		manager.ID = s.SalesManagerID
		manager.Languages = domain.NewStringSet(languages...)
		manager.Products = domain.NewStringSet(products...)
		manager.Ratings = domain.NewStringSet(ratings...)
		s.SalesManager = &manager

		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
