package scheduler

import (
	"context"
	"time"

	"github.com/adeenasif/little-lemon-booking/internal/service"
)

// Scheduler периодически пересчитывает слоты для выбранной даты:
// для сегодняшнего дня прошедшие посадки выпадают из списка
// по мере движения времени.
type Scheduler struct {
	timeSlotService service.TimeSlotService
	interval        time.Duration
}

func NewScheduler(timeSlotService service.TimeSlotService, interval time.Duration) *Scheduler {
	return &Scheduler{
		timeSlotService: timeSlotService,
		interval:        interval,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.timeSlotService.Refresh()
		case <-ctx.Done():
			return
		}
	}
}
