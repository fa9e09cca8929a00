package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Поводы визита, доступные в форме бронирования
var Occasions = []string{"Birthday", "Anniversary", "Engagement", "Business", "Other"}

// Booking — подтверждённое бронирование столика.
// JSON-теги соответствуют формату записи в durable storage
// (ключ littleLemonBookings, массив объектов целиком).
type Booking struct {
	ID              int64         `json:"id"`
	BookingRef      string        `json:"bookingRef"`
	Date            Date          `json:"date"`
	Time            string        `json:"time"`
	Guests          int           `json:"guests"`
	Occasion        string        `json:"occasion,omitempty"`
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone,omitempty"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// BookingForm — данные формы до подтверждения. Поля заполняет клиент,
// системные поля (id, bookingRef, status, createdAt) назначает store.
type BookingForm struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	Occasion        string `json:"occasion"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"specialRequests"`
}
