package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/adeenasif/little-lemon-booking/config"
	"github.com/adeenasif/little-lemon-booking/internal/database"
	"github.com/adeenasif/little-lemon-booking/internal/entity"
	"github.com/adeenasif/little-lemon-booking/internal/pkg/validation"
	"github.com/adeenasif/little-lemon-booking/pkg/reservationapi"
	"github.com/adeenasif/little-lemon-booking/pkg/telegram"

	"github.com/sirupsen/logrus"
)

type bookingService struct {
	repo        database.BookingRepository
	api         reservationapi.Client
	times       TimeSlotService
	validator   *validation.Validator
	telegramBot *telegram.Bot
	chatID      string
	cfg         config.BookingConfig
	now         func() time.Time

	mu       sync.Mutex
	bookings []*entity.Booking
	current  *entity.Booking
	lastID   int64
}

// NewBookingService создает booking store. Экземпляр создаётся один раз
// на старте приложения и внедряется потребителям, глобального
// синглтона нет.
func NewBookingService(
	repo database.BookingRepository,
	api reservationapi.Client,
	times TimeSlotService,
	validator *validation.Validator,
	telegramBot *telegram.Bot,
	chatID string,
	cfg config.BookingConfig,
	now func() time.Time,
) BookingService {
	if now == nil {
		now = time.Now
	}
	return &bookingService{
		repo:        repo,
		api:         api,
		times:       times,
		validator:   validator,
		telegramBot: telegramBot,
		chatID:      chatID,
		cfg:         cfg,
		now:         now,
		bookings:    make([]*entity.Booking, 0),
	}
}

// Submit проводит заявку через весь поток формы: валидация,
// вызов внешнего API, запись в store, сохранение в durable storage.
func (s *bookingService) Submit(ctx context.Context, form *entity.BookingForm) (*entity.Booking, error) {
	available := s.times.TimesFor(form.Date)
	if errs := s.validator.Validate(form, available, s.now()); len(errs) > 0 {
		return nil, errs
	}

	ok, err := s.api.Submit(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrSubmissionFailed, err)
	}
	if !ok {
		return nil, entity.ErrSubmissionDeclined
	}

	date, err := entity.ParseDate(form.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidInput, err)
	}

	s.mu.Lock()
	booking := &entity.Booking{
		ID:              s.nextIDLocked(),
		Date:            date,
		Time:            form.Time,
		Guests:          form.Guests,
		Occasion:        form.Occasion,
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		Email:           form.Email,
		Phone:           form.Phone,
		SpecialRequests: form.SpecialRequests,
		Status:          entity.BookingStatusConfirmed,
		CreatedAt:       s.now(),
	}
	booking.BookingRef = s.uniqueRefLocked(booking.ID)

	s.bookings = append(s.bookings, booking)
	s.current = booking
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	logrus.Infof("Booking created: ID=%d, Ref=%s, Date=%s, Time=%s, Guests=%d",
		booking.ID, booking.BookingRef, booking.Date, booking.Time, booking.Guests)

	if s.telegramBot != nil && s.chatID != "" {
		go s.sendBookingConfirmedNotification(booking)
	}

	// Запись durable storage — явный шаг контракта Submit, ровно один
	// раз на успешную отправку. Сбой не отменяет бронирование:
	// оно остаётся подтверждённым в памяти до конца сессии.
	if err := s.repo.SaveAll(ctx, snapshot); err != nil {
		logrus.Warnf("Failed to persist bookings after submit: %v", err)
		return booking, fmt.Errorf("%w: booking kept in memory for current session", entity.ErrStorageUnavailable)
	}

	return booking, nil
}

// Cancel убирает бронирование из коллекции. Отсутствующий id — no-op.
func (s *bookingService) Cancel(ctx context.Context, bookingID int64) error {
	s.mu.Lock()

	idx := -1
	for i, b := range s.bookings {
		if b.ID == bookingID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		logrus.Debugf("Cancel of unknown booking %d ignored", bookingID)
		return nil
	}

	// Запись только убирается из коллекции. Статус не мутируется:
	// опубликованные *entity.Booking разделяются со снапшотами,
	// которые сериализуются вне критической секции.
	removed := s.bookings[idx]
	s.bookings = append(s.bookings[:idx], s.bookings[idx+1:]...)

	if s.current != nil && s.current.ID == bookingID {
		s.current = nil
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	logrus.Infof("Booking cancelled: ID=%d, Ref=%s", removed.ID, removed.BookingRef)

	if err := s.repo.SaveAll(ctx, snapshot); err != nil {
		logrus.Warnf("Failed to persist bookings after cancel: %v", err)
		return fmt.Errorf("%w: cancellation kept in memory for current session", entity.ErrStorageUnavailable)
	}

	return nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID int64) (*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ID == bookingID {
			return b, nil
		}
	}
	return nil, entity.ErrBookingNotFound
}

func (s *bookingService) GetAllBookings(ctx context.Context) ([]*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(), nil
}

func (s *bookingService) CurrentBooking(ctx context.Context) (*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, entity.ErrBookingNotFound
	}
	return s.current, nil
}

// Restore загружает коллекцию из durable storage при старте приложения
func (s *bookingService) Restore(ctx context.Context) error {
	bookings, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore bookings: %w", err)
	}

	s.mu.Lock()
	s.bookings = bookings
	for _, b := range bookings {
		if b.ID > s.lastID {
			s.lastID = b.ID
		}
	}
	s.mu.Unlock()

	logrus.Infof("Restored %d bookings from storage", len(bookings))
	return nil
}

// SyncStorage перезаписывает запись хранилища текущей коллекцией
func (s *bookingService) SyncStorage(ctx context.Context) error {
	s.mu.Lock()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return s.repo.SaveAll(ctx, snapshot)
}

// nextIDLocked выдает время-производный id, строго монотонный
// в пределах процесса
func (s *bookingService) nextIDLocked() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// uniqueRefLocked выводит из id читаемый номер брони вида LL-123456.
// При совпадении с существующим номером id сдвигается, пока номер
// не станет уникальным в коллекции.
func (s *bookingService) uniqueRefLocked(id int64) string {
	for {
		ref := fmt.Sprintf("%s-%06d", s.cfg.RefPrefix, id%1000000)
		if !s.refExistsLocked(ref) {
			return ref
		}
		id++
	}
}

func (s *bookingService) refExistsLocked(ref string) bool {
	for _, b := range s.bookings {
		if b.BookingRef == ref {
			return true
		}
	}
	return false
}

func (s *bookingService) snapshotLocked() []*entity.Booking {
	snapshot := make([]*entity.Booking, len(s.bookings))
	copy(snapshot, s.bookings)
	return snapshot
}

// sendBookingConfirmedNotification отправляет уведомление о новой брони
func (s *bookingService) sendBookingConfirmedNotification(booking *entity.Booking) {
	message := fmt.Sprintf(
		"🍋 Table reserved!\n\n"+
			"Date: %s\n"+
			"Time: %s\n"+
			"Guests: %d\n"+
			"Name: %s %s\n"+
			"Reference: %s",
		booking.Date,
		booking.Time,
		booking.Guests,
		booking.FirstName,
		booking.LastName,
		booking.BookingRef,
	)

	if err := s.telegramBot.SendMessage(s.chatID, message); err != nil {
		logrus.Errorf("Failed to send Telegram notification for booking %d: %v", booking.ID, err)
	}
}
