package timeslot

import (
	"fmt"
	"time"

	"github.com/adeenasif/little-lemon-booking/config"
	"github.com/adeenasif/little-lemon-booking/internal/entity"
)

type ActionType string

const (
	ActionInitialize  ActionType = "INITIALIZE_TIMES"
	ActionUpdateTimes ActionType = "UPDATE_TIMES"
)

// Action — действие reducer'а. Date заполняется для UPDATE_TIMES
// в формате ISO "YYYY-MM-DD".
type Action struct {
	Type ActionType `json:"type"`
	Date string     `json:"date"`
}

// Policy вычисляет список доступных слотов посадки.
// Часы работы фиксированы конфигом, текущее время берётся из
// инжектированных часов: для одной и той же пары (дата, момент времени)
// результат всегда одинаковый.
type Policy struct {
	cfg config.HoursConfig
	now func() time.Time
}

func NewPolicy(cfg config.HoursConfig, now func() time.Time) *Policy {
	if now == nil {
		now = time.Now
	}
	return &Policy{cfg: cfg, now: now}
}

// InitializeTimes возвращает базовый список слотов — сетку буднего дня
func (p *Policy) InitializeTimes() []string {
	return seatings(p.cfg.WeekdayFirstSeating, p.cfg.WeekdayLastSeating)
}

// UpdateTimes — чистый reducer (state, action) -> state.
// Каждый вызов возвращает новый срез, состояние не мутируется.
// Неизвестный тип действия оставляет состояние как есть.
func (p *Policy) UpdateTimes(state []string, action Action) []string {
	switch action.Type {
	case ActionInitialize:
		return p.InitializeTimes()
	case ActionUpdateTimes:
		return p.TimesForDate(action.Date)
	default:
		return state
	}
}

// TimesForDate возвращает слоты для конкретной даты:
// пятница и суббота работают дольше, воскресенье короче,
// закрытые даты дают пустой список, для сегодняшней даты
// отбрасываются посадки, до которых осталось меньше lead time.
func (p *Policy) TimesForDate(dateStr string) []string {
	date, err := entity.ParseDate(dateStr)
	if err != nil {
		return []string{}
	}

	if p.isClosed(date) {
		return []string{}
	}

	first, last := p.seatingWindow(date.Weekday())
	slots := seatings(first, last)

	now := p.now()
	if date.Equal(entity.DateOf(now)) {
		slots = p.dropPassed(slots, date, now)
	}

	return slots
}

func (p *Policy) seatingWindow(day time.Weekday) (int, int) {
	switch day {
	case time.Sunday:
		return p.cfg.SundayFirstSeating, p.cfg.SundayLastSeating
	case time.Friday, time.Saturday:
		return p.cfg.WeekendFirstSeating, p.cfg.WeekendLastSeating
	default:
		return p.cfg.WeekdayFirstSeating, p.cfg.WeekdayLastSeating
	}
}

func (p *Policy) isClosed(date entity.Date) bool {
	for _, closed := range p.cfg.ClosedDates {
		if closed == date.String() {
			return true
		}
	}
	return false
}

// dropPassed убирает слоты, до начала которых осталось меньше lead time
func (p *Policy) dropPassed(slots []string, date entity.Date, now time.Time) []string {
	lead := time.Duration(p.cfg.LeadTimeMinutes) * time.Minute
	cutoff := now.Add(lead)

	kept := make([]string, 0, len(slots))
	for _, slot := range slots {
		t, err := time.Parse("15:04", slot)
		if err != nil {
			continue
		}
		seating := time.Date(date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0, now.Location())
		if !seating.Before(cutoff) {
			kept = append(kept, slot)
		}
	}
	return kept
}

func seatings(first, last int) []string {
	if last < first {
		return []string{}
	}
	slots := make([]string, 0, last-first+1)
	for h := first; h <= last; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}
