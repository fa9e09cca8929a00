package service

import (
	"testing"
	"time"

	"github.com/adeenasif/little-lemon-booking/internal/pkg/timeslot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTimeSlotServiceInitialState: до выбора даты отдается базовая сетка
func TestTimeSlotServiceInitialState(t *testing.T) {
	policy := timeslot.NewPolicy(testHoursCfg(), func() time.Time { return testNow })
	svc := NewTimeSlotService(policy)

	assert.Equal(t, "", svc.SelectedDate())
	assert.Equal(t, []string{"17:00", "18:00", "19:00", "20:00", "21:00"}, svc.AvailableTimes())
}

// TestTimeSlotServiceChangeDate: смена даты пересчитывает список
func TestTimeSlotServiceChangeDate(t *testing.T) {
	policy := timeslot.NewPolicy(testHoursCfg(), func() time.Time { return testNow })
	svc := NewTimeSlotService(policy)

	times := svc.ChangeDate("2025-03-16") // sunday
	assert.Equal(t, []string{"16:00", "17:00", "18:00", "19:00", "20:00"}, times)
	assert.Equal(t, "2025-03-16", svc.SelectedDate())
	assert.Equal(t, times, svc.AvailableTimes())

	times = svc.ChangeDate("2025-03-14") // friday
	assert.Equal(t, []string{"17:00", "18:00", "19:00", "20:00", "21:00", "22:00"}, times)
}

// TestTimeSlotServiceRefresh: для сегодняшней даты слоты тают со временем
func TestTimeSlotServiceRefresh(t *testing.T) {
	// Подвижные часы: между вызовами время сдвигается
	now := testNow // 10:00
	policy := timeslot.NewPolicy(testHoursCfg(), func() time.Time { return now })
	svc := NewTimeSlotService(policy)

	times := svc.ChangeDate("2025-03-12")
	require.Equal(t, []string{"17:00", "18:00", "19:00", "20:00", "21:00"}, times)

	now = time.Date(2025, 3, 12, 17, 30, 0, 0, time.UTC)
	times = svc.Refresh()
	assert.Equal(t, []string{"19:00", "20:00", "21:00"}, times)

	now = time.Date(2025, 3, 12, 22, 0, 0, 0, time.UTC)
	assert.Empty(t, svc.Refresh())
}

// TestTimeSlotServiceRefreshWithoutDate: без выбранной даты refresh ничего не меняет
func TestTimeSlotServiceRefreshWithoutDate(t *testing.T) {
	policy := timeslot.NewPolicy(testHoursCfg(), func() time.Time { return testNow })
	svc := NewTimeSlotService(policy)

	assert.Equal(t, svc.AvailableTimes(), svc.Refresh())
	assert.Equal(t, "", svc.SelectedDate())
}

// TestTimeSlotServiceReturnsCopies: вызывающий не может испортить состояние
func TestTimeSlotServiceReturnsCopies(t *testing.T) {
	policy := timeslot.NewPolicy(testHoursCfg(), func() time.Time { return testNow })
	svc := NewTimeSlotService(policy)

	times := svc.AvailableTimes()
	times[0] = "03:00"

	assert.Equal(t, "17:00", svc.AvailableTimes()[0])
}

// TestTimeSlotServiceTimesFor: выборка без смены состояния сервиса
func TestTimeSlotServiceTimesFor(t *testing.T) {
	policy := timeslot.NewPolicy(testHoursCfg(), func() time.Time { return testNow })
	svc := NewTimeSlotService(policy)

	times := svc.TimesFor("2025-03-16")
	assert.Equal(t, []string{"16:00", "17:00", "18:00", "19:00", "20:00"}, times)

	// Состояние сервиса не изменилось
	assert.Equal(t, "", svc.SelectedDate())
	assert.Equal(t, []string{"17:00", "18:00", "19:00", "20:00", "21:00"}, svc.AvailableTimes())
}
