package timeslot

import (
	"testing"
	"time"

	"github.com/adeenasif/little-lemon-booking/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHours() config.HoursConfig {
	return config.HoursConfig{
		WeekdayFirstSeating: 17,
		WeekdayLastSeating:  21,
		WeekendFirstSeating: 17,
		WeekendLastSeating:  22,
		SundayFirstSeating:  16,
		SundayLastSeating:   20,
		LeadTimeMinutes:     60,
		ClosedDates:         []string{"2025-12-25"},
	}
}

// фиксированные часы: среда, 12 марта 2025, 10:00
func fixedNow() time.Time {
	return time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
}

// TestInitializeTimes проверяет базовый список слотов
func TestInitializeTimes(t *testing.T) {
	policy := NewPolicy(testHours(), fixedNow)

	times := policy.InitializeTimes()
	assert.Equal(t, []string{"17:00", "18:00", "19:00", "20:00", "21:00"}, times)

	// Идемпотентность: повторный вызов дает идентичный список
	assert.Equal(t, times, policy.InitializeTimes())
}

// TestUpdateTimesByWeekday проверяет сетку слотов по дням недели
func TestUpdateTimesByWeekday(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected []string
	}{
		{
			name:     "thursday uses weekday hours",
			date:     "2025-03-13",
			expected: []string{"17:00", "18:00", "19:00", "20:00", "21:00"},
		},
		{
			name:     "friday stays open later",
			date:     "2025-03-14",
			expected: []string{"17:00", "18:00", "19:00", "20:00", "21:00", "22:00"},
		},
		{
			name:     "saturday stays open later",
			date:     "2025-03-15",
			expected: []string{"17:00", "18:00", "19:00", "20:00", "21:00", "22:00"},
		},
		{
			name:     "sunday opens earlier and closes earlier",
			date:     "2025-03-16",
			expected: []string{"16:00", "17:00", "18:00", "19:00", "20:00"},
		},
		{
			name:     "closed date yields no slots",
			date:     "2025-12-25",
			expected: []string{},
		},
		{
			name:     "malformed date yields no slots",
			date:     "not-a-date",
			expected: []string{},
		},
	}

	policy := NewPolicy(testHours(), fixedNow)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := policy.InitializeTimes()
			action := Action{Type: ActionUpdateTimes, Date: tt.date}

			result := policy.UpdateTimes(state, action)
			assert.Equal(t, tt.expected, result)

			// Детерминированность: тот же date дает тот же список
			assert.Equal(t, result, policy.UpdateTimes(state, action))
		})
	}
}

// TestUpdateTimesToday проверяет отсечение прошедших посадок
func TestUpdateTimesToday(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		expected []string
	}{
		{
			name:     "morning keeps the full evening grid",
			now:      time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC),
			expected: []string{"17:00", "18:00", "19:00", "20:00", "21:00"},
		},
		{
			name:     "lead time drops the next seating",
			now:      time.Date(2025, 3, 12, 16, 30, 0, 0, time.UTC),
			expected: []string{"18:00", "19:00", "20:00", "21:00"},
		},
		{
			name:     "seating exactly at lead boundary is kept",
			now:      time.Date(2025, 3, 12, 16, 0, 0, 0, time.UTC),
			expected: []string{"17:00", "18:00", "19:00", "20:00", "21:00"},
		},
		{
			name:     "late evening leaves nothing",
			now:      time.Date(2025, 3, 12, 21, 30, 0, 0, time.UTC),
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := NewPolicy(testHours(), func() time.Time { return tt.now })

			result := policy.TimesForDate("2025-03-12")
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestUpdateTimesUnknownAction проверяет, что reducer не трогает состояние
func TestUpdateTimesUnknownAction(t *testing.T) {
	policy := NewPolicy(testHours(), fixedNow)

	state := []string{"19:00", "20:00"}
	result := policy.UpdateTimes(state, Action{Type: "SOMETHING_ELSE"})

	assert.Equal(t, state, result)
}

// TestUpdateTimesInitializeAction проверяет сброс к базовому состоянию
func TestUpdateTimesInitializeAction(t *testing.T) {
	policy := NewPolicy(testHours(), fixedNow)

	result := policy.UpdateTimes([]string{"20:00"}, Action{Type: ActionInitialize})

	require.NotEmpty(t, result)
	assert.Equal(t, policy.InitializeTimes(), result)
}

// TestUpdateTimesDoesNotMutateState проверяет, что старый срез не меняется
func TestUpdateTimesDoesNotMutateState(t *testing.T) {
	policy := NewPolicy(testHours(), fixedNow)

	state := policy.InitializeTimes()
	original := make([]string, len(state))
	copy(original, state)

	policy.UpdateTimes(state, Action{Type: ActionUpdateTimes, Date: "2025-03-16"})

	assert.Equal(t, original, state)
}
