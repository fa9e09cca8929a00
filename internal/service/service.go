package service

import (
	"context"

	"github.com/adeenasif/little-lemon-booking/internal/entity"
)

// TimeSlotService владеет текущим списком доступных слотов.
// Список пересоздаётся reducer'ом при смене даты, на месте не мутируется.
type TimeSlotService interface {
	// Текущее состояние
	AvailableTimes() []string
	SelectedDate() string

	// Переходы состояния
	ChangeDate(date string) []string
	Refresh() []string

	// Чистый расчёт без смены состояния
	TimesFor(date string) []string
}

// BookingService определяет интерфейс booking store и потока отправки формы.
//
// Submit при отказе durable storage возвращает созданное бронирование
// ВМЕСТЕ с ошибкой entity.ErrStorageUnavailable: бронирование остаётся
// подтверждённым в памяти на время сессии, а сбой хранилища
// поднимается как некритичное предупреждение.
type BookingService interface {
	// Основные операции
	Submit(ctx context.Context, form *entity.BookingForm) (*entity.Booking, error)
	Cancel(ctx context.Context, bookingID int64) error

	// Чтение (только для потребителей, store владеет коллекцией)
	GetBooking(ctx context.Context, bookingID int64) (*entity.Booking, error)
	GetAllBookings(ctx context.Context) ([]*entity.Booking, error)
	CurrentBooking(ctx context.Context) (*entity.Booking, error)

	// Работа с durable storage
	Restore(ctx context.Context) error
	SyncStorage(ctx context.Context) error
}
