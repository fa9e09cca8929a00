package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adeenasif/little-lemon-booking/internal/entity"

	"github.com/go-redis/redis/v8"
)

type redisRepository struct {
	client *redis.Client
	key    string
}

func NewRedisRepository(client *redis.Client, key string) BookingRepository {
	return &redisRepository{client: client, key: key}
}

func (r *redisRepository) SaveAll(ctx context.Context, bookings []*entity.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to marshal bookings: %w", err)
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *redisRepository) LoadAll(ctx context.Context) ([]*entity.Booking, error) {
	data, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if err == redis.Nil {
			return []*entity.Booking{}, nil
		}
		return nil, fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}

	var bookings []*entity.Booking
	if err := json.Unmarshal([]byte(data), &bookings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookings: %w", err)
	}
	return bookings, nil
}
