package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStringSet(t *testing.T) {
	t.Run("contains is exact and case sensitive", func(t *testing.T) {
		set := NewStringSet("German", "English")

		assert.True(t, set.Contains("German"))
		assert.False(t, set.Contains("german"))
		assert.False(t, set.Contains("Ger"))
	})

	t.Run("contains all is conjunctive", func(t *testing.T) {
		set := NewStringSet("SolarPanels", "Heatpumps")

		assert.True(t, set.ContainsAll([]string{"SolarPanels"}))
		assert.True(t, set.ContainsAll([]string{"SolarPanels", "Heatpumps"}))
		assert.False(t, set.ContainsAll([]string{"SolarPanels", "Windturbines"}))
	})

	t.Run("contains all of empty list is vacuously true", func(t *testing.T) {
		assert.True(t, NewStringSet().ContainsAll(nil))
	})

	t.Run("duplicates collapse and values are sorted", func(t *testing.T) {
		set := NewStringSet("b", "a", "b")

		assert.Equal(t, []string{"a", "b"}, set.Values())
	})
}

func TestSalesManager_CanServe(t *testing.T) {
	manager := &SalesManager{
		ID:        1,
		Languages: NewStringSet("German", "English"),
		Products:  NewStringSet("SolarPanels", "Heatpumps"),
		Ratings:   NewStringSet("Gold", "Silver"),
	}

	assert.True(t, manager.CanServe("German", []string{"SolarPanels", "Heatpumps"}, "Gold"))
	assert.False(t, manager.CanServe("Spanish", []string{"SolarPanels"}, "Gold"))
	assert.False(t, manager.CanServe("German", []string{"Windturbines"}, "Gold"))
	assert.False(t, manager.CanServe("German", []string{"SolarPanels"}, "Bronze"))
}

func TestSlot_Overlaps(t *testing.T) {
	at := func(hour, min int) time.Time {
		return time.Date(2024, 5, 3, hour, min, 0, 0, time.UTC)
	}
	slot := &Slot{StartDate: at(9, 0), EndDate: at(10, 0)}

	testCases := []struct {
		name     string
		other    *Slot
		overlaps bool
	}{
		{"partial overlap from the right", &Slot{StartDate: at(9, 30), EndDate: at(10, 30)}, true},
		{"partial overlap from the left", &Slot{StartDate: at(8, 30), EndDate: at(9, 30)}, true},
		{"fully contained", &Slot{StartDate: at(9, 15), EndDate: at(9, 45)}, true},
		{"fully covering", &Slot{StartDate: at(8, 0), EndDate: at(11, 0)}, true},
		{"identical interval", &Slot{StartDate: at(9, 0), EndDate: at(10, 0)}, true},
		{"touching at slot end", &Slot{StartDate: at(10, 0), EndDate: at(11, 0)}, false},
		{"touching at slot start", &Slot{StartDate: at(8, 0), EndDate: at(9, 0)}, false},
		{"disjoint", &Slot{StartDate: at(11, 0), EndDate: at(12, 0)}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, slot.Overlaps(tc.other))
		})
	}
}
