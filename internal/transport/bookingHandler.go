package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/adeenasif/little-lemon-booking/internal/entity"
	"github.com/adeenasif/little-lemon-booking/internal/service"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService service.BookingService
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// SuccessResponse представляет успешный ответ
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Warning string      `json:"warning,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// CreateBooking — роль Booking Form: принять поля, прогнать валидацию,
// вызвать внешний API и при успехе отдать бронирование store'у.
// Три исхода внешнего вызова (успех, отказ, сбой) разводятся по ответам.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var form entity.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Invalid request body: " + err.Error(),
		})
		return
	}

	booking, err := h.bookingService.Submit(c.Request.Context(), &form)

	var verrs entity.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Errors:  verrs,
		})
		return
	case errors.Is(err, entity.ErrSubmissionDeclined):
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Success: false,
			Error:   "Failed to submit booking. Please try again.",
		})
		return
	case errors.Is(err, entity.ErrSubmissionFailed):
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error:   "An error occurred. Please try again.",
		})
		return
	case errors.Is(err, entity.ErrStorageUnavailable):
		// Бронирование подтверждено, не записалось только хранилище
		c.Header("Location", "/confirmed")
		c.JSON(http.StatusCreated, SuccessResponse{
			Success: true,
			Message: "Booking confirmed",
			Data:    booking,
			Warning: "Booking could not be saved to durable storage and is kept for this session only",
		})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error:   "An error occurred. Please try again.",
		})
		return
	}

	// Навигация на страницу подтверждения — забота клиента,
	// сервер лишь подсказывает адрес
	c.Header("Location", "/confirmed")
	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "Booking confirmed",
		Data:    booking,
	})
}

func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	bookings, err := h.bookingService.GetAllBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error:   "Failed to get bookings: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Bookings retrieved successfully",
		Data:    bookings,
		Meta: map[string]interface{}{
			"total": len(bookings),
		},
	})
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// GetCurrentBooking возвращает последнее отправленное бронирование —
// его показывает страница подтверждения
func (h *BookingHandler) GetCurrentBooking(c *gin.Context) {
	booking, err := h.bookingService.CurrentBooking(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no current booking"})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CancelBooking снимает бронирование. Неизвестный id — не ошибка.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Invalid booking ID",
		})
		return
	}

	err = h.bookingService.Cancel(c.Request.Context(), bookingID)
	if errors.Is(err, entity.ErrStorageUnavailable) {
		c.JSON(http.StatusOK, SuccessResponse{
			Success: true,
			Message: "Booking cancelled",
			Warning: "Cancellation could not be saved to durable storage",
			Meta: map[string]interface{}{
				"booking_id": bookingID,
			},
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error:   "Failed to cancel booking: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Booking cancelled",
		Meta: map[string]interface{}{
			"booking_id": bookingID,
		},
	})
}
