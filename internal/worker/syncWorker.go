package worker

import (
	"context"
	"time"

	"github.com/adeenasif/little-lemon-booking/internal/service"

	"github.com/sirupsen/logrus"
)

// BookingSyncWorker периодически перезаписывает запись durable storage
// текущей коллекцией. Страхует от пропущенной записи, когда хранилище
// было недоступно в момент Submit или Cancel.
type BookingSyncWorker struct {
	bookingService service.BookingService
	interval       time.Duration
}

func NewBookingSyncWorker(bookingService service.BookingService, interval time.Duration) *BookingSyncWorker {
	return &BookingSyncWorker{
		bookingService: bookingService,
		interval:       interval,
	}
}

func (w *BookingSyncWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.Info("Booking sync worker started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Booking sync worker stopped")
			return
		case <-ticker.C:
			w.syncBookings(ctx)
		}
	}
}

// syncBookings выполняет один проход синхронизации
func (w *BookingSyncWorker) syncBookings(ctx context.Context) {
	if err := w.bookingService.SyncStorage(ctx); err != nil {
		logrus.Errorf("Failed to sync bookings to storage: %v", err)
		return
	}

	logrus.Debug("Bookings synced to storage")
}

// GetStats возвращает сводку по воркеру для health check
func (w *BookingSyncWorker) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"worker_type": "booking_sync",
		"interval":    w.interval.String(),
		"status":      "running",
	}
}
