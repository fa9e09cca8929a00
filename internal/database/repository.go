package database

import (
	"context"
	"fmt"

	"github.com/adeenasif/little-lemon-booking/config"
	"github.com/adeenasif/little-lemon-booking/internal/entity"

	"github.com/go-redis/redis/v8"
)

// BookingRepository — durable storage для бронирований.
// Хранится одна именованная запись с полным JSON-массивом,
// перезаписываемая целиком при каждом сохранении.
type BookingRepository interface {
	SaveAll(ctx context.Context, bookings []*entity.Booking) error
	LoadAll(ctx context.Context) ([]*entity.Booking, error)
}

// NewBookingRepository выбирает реализацию по конфигу
func NewBookingRepository(cfg *config.StorageConfig, client *redis.Client) (BookingRepository, error) {
	switch cfg.Backend {
	case "redis":
		if client == nil {
			return nil, fmt.Errorf("redis backend requires a redis client")
		}
		return NewRedisRepository(client, cfg.Key), nil
	case "file":
		return NewFileRepository(cfg.FilePath, cfg.Key), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}
