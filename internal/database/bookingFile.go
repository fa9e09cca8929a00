package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adeenasif/little-lemon-booking/internal/entity"
)

// fileRepository хранит запись в JSON-файле <basePath>/<key>.json
type fileRepository struct {
	basePath string
	key      string
}

func NewFileRepository(basePath, key string) BookingRepository {
	return &fileRepository{basePath: basePath, key: key}
}

func (s *fileRepository) path() string {
	return filepath.Join(s.basePath, s.key+".json")
}

func (s *fileRepository) SaveAll(ctx context.Context, bookings []*entity.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to marshal bookings: %w", err)
	}

	// Создаем директорию если нужно
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}

	if err := os.WriteFile(s.path(), data, 0644); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *fileRepository) LoadAll(ctx context.Context) ([]*entity.Booking, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return []*entity.Booking{}, nil
		}
		return nil, fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}

	var bookings []*entity.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookings: %w", err)
	}
	return bookings, nil
}
