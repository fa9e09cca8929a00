package reservationapi

import (
	"context"
	"time"

	"github.com/adeenasif/little-lemon-booking/internal/entity"
)

// Client — внешний reservation API. Submit возвращает true при
// подтверждении, false при отказе, ошибку при неожиданном сбое.
// Форма обязана различать все три исхода.
type Client interface {
	Submit(ctx context.Context, form *entity.BookingForm) (bool, error)
}

// StubClient имитирует сетевой вызов к API бронирования:
// выдерживает настроенную задержку и подтверждает заявку.
type StubClient struct {
	latency time.Duration
}

func NewStubClient(latency time.Duration) *StubClient {
	return &StubClient{latency: latency}
}

func (c *StubClient) Submit(ctx context.Context, form *entity.BookingForm) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-time.After(c.latency):
	}
	return true, nil
}
