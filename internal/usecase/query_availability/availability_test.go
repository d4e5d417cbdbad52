package query_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date becomes start of UTC day", func(t *testing.T) {
		start, err := parseDate("2024-05-03")
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.UTC, start.Location())
	})

	t.Run("leap day is valid", func(t *testing.T) {
		start, err := parseDate("2024-02-29")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("leap day of non-leap year is rejected", func(t *testing.T) {
		_, err := parseDate("2023-02-29")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestResolveConflicts(t *testing.T) {
	seller := newManager(1, []string{"German"}, []string{"SolarPanels"}, []string{"Gold"})

	t.Run("booked block covering several free slots excludes them all", func(t *testing.T) {
		free1 := newSlot(1, seller, 9, 0, 9, 30, false)
		free2 := newSlot(2, seller, 9, 30, 10, 0, false)
		free3 := newSlot(3, seller, 10, 0, 10, 30, false)
		// Крупный забронированный блок накрывает первые два слота
		booked := newSlot(4, seller, 9, 0, 10, 0, true)

		all := []*domain.Slot{free1, free2, free3, booked}
		available := resolveConflicts([]*domain.Slot{free1, free2, free3}, all)

		require.Len(t, available, 1)
		assert.Equal(t, free3.ID, available[0].ID)
	})

	t.Run("free slot never conflicts with itself", func(t *testing.T) {
		free := newSlot(1, seller, 9, 0, 10, 0, false)

		available := resolveConflicts([]*domain.Slot{free}, []*domain.Slot{free})

		require.Len(t, available, 1)
	})

	t.Run("free slots of the same manager do not conflict with each other", func(t *testing.T) {
		free1 := newSlot(1, seller, 9, 0, 10, 0, false)
		free2 := newSlot(2, seller, 9, 30, 10, 30, false) // пересекается, но не забронирован

		all := []*domain.Slot{free1, free2}
		available := resolveConflicts(all, all)

		require.Len(t, available, 2)
	})

	t.Run("booked slot ending exactly at free slot start is not a conflict", func(t *testing.T) {
		free := newSlot(1, seller, 10, 0, 11, 0, false)
		booked := newSlot(2, seller, 9, 0, 10, 0, true)

		available := resolveConflicts([]*domain.Slot{free}, []*domain.Slot{free, booked})

		require.Len(t, available, 1)
	})
}

func TestAggregate(t *testing.T) {
	seller := newManager(1, []string{"German"}, []string{"SolarPanels"}, []string{"Gold"})

	t.Run("empty input yields empty non-nil report", func(t *testing.T) {
		result := aggregate(nil)

		require.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("starts differing by one millisecond are distinct groups", func(t *testing.T) {
		base := time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC)
		first := &domain.Slot{ID: 1, SalesManagerID: 1, StartDate: base, EndDate: base.Add(time.Hour), SalesManager: seller}
		second := &domain.Slot{ID: 2, SalesManagerID: 1, StartDate: base.Add(time.Millisecond), EndDate: base.Add(time.Hour), SalesManager: seller}

		result := aggregate([]*domain.Slot{second, first})

		require.Len(t, result, 2)
		assert.Equal(t, base, result[0].StartDate)
		assert.Equal(t, base.Add(time.Millisecond), result[1].StartDate)
	})

	t.Run("report is strictly ascending with unique starts", func(t *testing.T) {
		slots := []*domain.Slot{
			newSlot(1, seller, 11, 0, 12, 0, false),
			newSlot(2, seller, 9, 0, 10, 0, false),
			newSlot(3, seller, 9, 0, 9, 30, false),
			newSlot(4, seller, 10, 0, 11, 0, false),
		}

		result := aggregate(slots)

		require.Len(t, result, 3)
		for i := 1; i < len(result); i++ {
			assert.True(t, result[i-1].StartDate.Before(result[i].StartDate),
				"report must be strictly ascending by start")
		}
		assert.Equal(t, 2, result[0].AvailableCount)
	})
}

func TestFilterEligible_EmptyProductsMatchesEveryone(t *testing.T) {
	// Вакуумное совпадение: пустой список продуктов никого не исключает
	// До фильтра такой запрос не доходит - validateRequest его отклоняет
	seller := newManager(1, []string{"German"}, []string{}, []string{"Gold"})
	free := newSlot(1, seller, 9, 0, 10, 0, false)

	req := &Request{Date: "2024-05-03", Language: "German", Products: nil, Rating: "Gold"}
	eligible := filterEligible([]*domain.Slot{free}, req)

	require.Len(t, eligible, 1)
}
