package transport

import (
	"net/http"

	"github.com/adeenasif/little-lemon-booking/internal/service"
	"github.com/gin-gonic/gin"
)

// TimesHandler — роль Booking Page: владеет состоянием доступных
// слотов и пересчитывает его при смене даты.
type TimesHandler struct {
	timeSlotService service.TimeSlotService
}

func NewTimesHandler(timeSlotService service.TimeSlotService) *TimesHandler {
	return &TimesHandler{timeSlotService: timeSlotService}
}

// GetAvailableTimes отдает слоты. С параметром date state пересчитывается
// для новой даты, без параметра возвращается текущее состояние.
func (h *TimesHandler) GetAvailableTimes(c *gin.Context) {
	date := c.Query("date")

	var times []string
	if date != "" {
		times = h.timeSlotService.ChangeDate(date)
	} else {
		times = h.timeSlotService.AvailableTimes()
		date = h.timeSlotService.SelectedDate()
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"times": times,
	})
}
