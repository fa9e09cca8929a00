package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/adeenasif/little-lemon-booking/config"
	"github.com/adeenasif/little-lemon-booking/internal/entity"
)

var (
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegexp = regexp.MustCompile(`^\+?[0-9][0-9\s\-()]{5,19}$`)
)

// Validator проверяет форму бронирования. Без сети и без I/O:
// результат зависит только от формы, списка слотов и момента времени.
type Validator struct {
	cfg config.BookingConfig
}

func NewValidator(cfg config.BookingConfig) *Validator {
	return &Validator{cfg: cfg}
}

// Validate возвращает map поле -> сообщение. Пустая map — форма валидна.
func (v *Validator) Validate(form *entity.BookingForm, availableTimes []string, now time.Time) entity.ValidationErrors {
	errs := entity.ValidationErrors{}

	v.validateDate(errs, form.Date, now)
	v.validateTime(errs, form.Time, availableTimes)
	v.validateGuests(errs, form.Guests)
	v.validateContact(errs, form)
	v.validateOptional(errs, form)

	return errs
}

func (v *Validator) validateDate(errs entity.ValidationErrors, raw string, now time.Time) {
	if strings.TrimSpace(raw) == "" {
		errs["date"] = "Please select a date"
		return
	}

	date, err := entity.ParseDate(raw)
	if err != nil {
		errs["date"] = "Please enter a valid date"
		return
	}

	today := entity.DateOf(now)
	if date.Before(today) {
		errs["date"] = "Date cannot be in the past"
		return
	}

	horizon := entity.DateOf(now.AddDate(0, 0, v.cfg.HorizonDays))
	if horizon.Before(date) {
		errs["date"] = fmt.Sprintf("Date cannot be more than %d days in advance", v.cfg.HorizonDays)
	}
}

func (v *Validator) validateTime(errs entity.ValidationErrors, slot string, availableTimes []string) {
	if slot == "" {
		errs["time"] = "Please select a time"
		return
	}

	for _, t := range availableTimes {
		if t == slot {
			return
		}
	}
	errs["time"] = "Selected time is not available"
}

func (v *Validator) validateGuests(errs entity.ValidationErrors, guests int) {
	if guests < v.cfg.MinGuests {
		errs["guests"] = fmt.Sprintf("At least %d guest is required", v.cfg.MinGuests)
		return
	}
	if guests > v.cfg.MaxGuests {
		errs["guests"] = fmt.Sprintf("Maximum %d guests per reservation", v.cfg.MaxGuests)
	}
}

func (v *Validator) validateContact(errs entity.ValidationErrors, form *entity.BookingForm) {
	if strings.TrimSpace(form.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(form.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}

	email := strings.TrimSpace(form.Email)
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailRegexp.MatchString(email):
		errs["email"] = "Please enter a valid email address"
	}
}

// validateOptional проверяет необязательные поля только когда они заполнены
func (v *Validator) validateOptional(errs entity.ValidationErrors, form *entity.BookingForm) {
	if phone := strings.TrimSpace(form.Phone); phone != "" && !phoneRegexp.MatchString(phone) {
		errs["phone"] = "Please enter a valid phone number"
	}

	if len(form.SpecialRequests) > v.cfg.SpecialRequestsMax {
		errs["specialRequests"] = fmt.Sprintf("Special requests must be %d characters or less", v.cfg.SpecialRequestsMax)
	}

	if form.Occasion != "" {
		for _, o := range entity.Occasions {
			if o == form.Occasion {
				return
			}
		}
		errs["occasion"] = "Please select a valid occasion"
	}
}
