package service

import (
	"sync"

	"github.com/adeenasif/little-lemon-booking/internal/pkg/timeslot"

	"github.com/sirupsen/logrus"
)

type timeSlotService struct {
	policy *timeslot.Policy

	mu    sync.RWMutex
	date  string
	times []string
}

// NewTimeSlotService создает сервис со слотами в базовом состоянии
func NewTimeSlotService(policy *timeslot.Policy) TimeSlotService {
	return &timeSlotService{
		policy: policy,
		times:  policy.InitializeTimes(),
	}
}

func (s *timeSlotService) AvailableTimes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlots(s.times)
}

func (s *timeSlotService) SelectedDate() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.date
}

// ChangeDate пересчитывает слоты для выбранной даты через reducer
func (s *timeSlotService) ChangeDate(date string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.date = date
	s.times = s.policy.UpdateTimes(s.times, timeslot.Action{
		Type: timeslot.ActionUpdateTimes,
		Date: date,
	})

	logrus.Debugf("Available times recomputed for %s: %d slots", date, len(s.times))
	return copySlots(s.times)
}

// Refresh повторяет последний переход: для сегодняшней даты
// прошедшие посадки выпадают из списка
func (s *timeSlotService) Refresh() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.date == "" {
		return copySlots(s.times)
	}

	s.times = s.policy.UpdateTimes(s.times, timeslot.Action{
		Type: timeslot.ActionUpdateTimes,
		Date: s.date,
	})
	return copySlots(s.times)
}

func (s *timeSlotService) TimesFor(date string) []string {
	return s.policy.TimesForDate(date)
}

func copySlots(times []string) []string {
	out := make([]string, len(times))
	copy(out, times)
	return out
}
