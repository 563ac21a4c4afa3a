package get_availability

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Понедельник
var testDate = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func testSpot(totalSlots int, pricePerHour float64) *domain.ParkingSpot {
	return &domain.ParkingSpot{
		ID:             uuid.New(),
		OwnerID:        1,
		Name:           "Central Parking",
		TotalSlots:     totalSlots,
		AvailableSlots: totalSlots,
		PricePerHour:   pricePerHour,
		Hours: domain.WeekSchedule{
			"monday": {
				IsOpen:    true,
				OpenTime:  ptr.Ptr("08:00"),
				CloseTime: ptr.Ptr("12:00"),
			},
		},
	}
}

func activeBooking(spotID uuid.UUID, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		ID:        uuid.New(),
		SpotID:    spotID,
		UserID:    100,
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusConfirmed,
	}
}

func TestClassifySlots_AllAvailableOnFutureDate(t *testing.T) {
	spot := testSpot(2, 20)
	now := testDate.AddDate(0, 0, -1) // запрос накануне

	slots, err := classifySlots(spot, testDate, now, nil)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	for _, slot := range slots {
		assert.Equal(t, string(domain.SlotAvailable), slot.Status)
		assert.Equal(t, 2, slot.AvailableSpots)
		assert.Equal(t, 20.0, slot.Price)
	}

	assert.Equal(t, types.TimeString("08:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:00"), slots[0].EndTime)
	assert.Equal(t, types.TimeString("11:00"), slots[3].StartTime)
	assert.Equal(t, types.TimeString("12:00"), slots[3].EndTime)
}

func TestClassifySlots_BookedWhenCapacityExhausted(t *testing.T) {
	spot := testSpot(2, 20)
	now := testDate.AddDate(0, 0, -1)

	nine := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	ten := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		activeBooking(spot.ID, nine, ten),
		activeBooking(spot.ID, nine, ten),
	}

	slots, err := classifySlots(spot, testDate, now, bookings)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	// 09:00-10:00 полностью занят
	assert.Equal(t, string(domain.SlotBooked), slots[1].Status)
	assert.Equal(t, 0, slots[1].AvailableSpots)

	// Соседние слоты свободны: граничащие интервалы не пересекаются
	assert.Equal(t, string(domain.SlotAvailable), slots[0].Status)
	assert.Equal(t, string(domain.SlotAvailable), slots[2].Status)
}

func TestClassifySlots_PartialOverlapReducesCapacity(t *testing.T) {
	spot := testSpot(2, 20)
	now := testDate.AddDate(0, 0, -1)

	bookings := []*domain.Booking{
		activeBooking(spot.ID,
			time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)),
	}

	slots, err := classifySlots(spot, testDate, now, bookings)
	require.NoError(t, err)

	// Бронирование 09:00-11:00 занимает одно место в двух слотах
	assert.Equal(t, 2, slots[0].AvailableSpots)
	assert.Equal(t, 1, slots[1].AvailableSpots)
	assert.Equal(t, 1, slots[2].AvailableSpots)
	assert.Equal(t, 2, slots[3].AvailableSpots)
}

func TestClassifySlots_CancelledBookingDoesNotBlock(t *testing.T) {
	spot := testSpot(1, 20)
	now := testDate.AddDate(0, 0, -1)

	cancelled := activeBooking(spot.ID,
		time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	cancelled.Status = domain.StatusCancelled

	slots, err := classifySlots(spot, testDate, now, []*domain.Booking{cancelled})
	require.NoError(t, err)

	assert.Equal(t, string(domain.SlotAvailable), slots[1].Status)
	assert.Equal(t, 1, slots[1].AvailableSpots)
}

func TestClassifySlots_BegunSlotProration(t *testing.T) {
	spot := testSpot(2, 20)

	// Сейчас 10:20 - у слота 10:00-11:00 осталось 40 минут
	now := time.Date(2025, 6, 2, 10, 20, 0, 0, time.UTC)

	slots, err := classifySlots(spot, testDate, now, nil)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	// Прошедшие слоты недоступны
	assert.Equal(t, string(domain.SlotUnavailable), slots[0].Status)
	assert.Equal(t, string(domain.SlotUnavailable), slots[1].Status)

	// Начавшийся слот с достаточным остатком: цена пропорциональна остатку
	// half=10, elapsed=(40-30)/30, price=ceil(10 + 10/3) = 14
	assert.Equal(t, string(domain.SlotAvailable), slots[2].Status)
	assert.Equal(t, 14.0, slots[2].Price)

	// Будущий слот по полной цене
	assert.Equal(t, string(domain.SlotAvailable), slots[3].Status)
	assert.Equal(t, 20.0, slots[3].Price)
}

func TestClassifySlots_BegunSlotBelowMinimumUnavailable(t *testing.T) {
	spot := testSpot(2, 20)

	// Сейчас 10:45 - у слота 10:00-11:00 осталось 15 минут, меньше минимума
	now := time.Date(2025, 6, 2, 10, 45, 0, 0, time.UTC)

	slots, err := classifySlots(spot, testDate, now, nil)
	require.NoError(t, err)

	assert.Equal(t, string(domain.SlotUnavailable), slots[2].Status)
	assert.Equal(t, 0.0, slots[2].Price)

	assert.Equal(t, string(domain.SlotAvailable), slots[3].Status)
}

func TestClassifySlots_ClosedDay(t *testing.T) {
	spot := testSpot(2, 20)
	now := testDate.AddDate(0, 0, -1)

	// Вторник в расписании отсутствует - парковка закрыта
	tuesday := testDate.AddDate(0, 0, 1)

	slots, err := classifySlots(spot, tuesday, now, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestClassifySlots_AlwaysOpenSpotEndsAtDayEnd(t *testing.T) {
	spot := testSpot(2, 20)
	spot.IsAlwaysOpen = true
	now := testDate.AddDate(0, 0, -1)

	slots, err := classifySlots(spot, testDate, now, nil)
	require.NoError(t, err)
	require.Len(t, slots, 24)

	// Последний слот дня заканчивается на отметке 24:00
	assert.Equal(t, types.TimeString("23:00"), slots[23].StartTime)
	assert.Equal(t, types.TimeString("24:00"), slots[23].EndTime)
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)

	assert.True(t, isDateInPast(now.AddDate(0, 0, -1), now))
	assert.False(t, isDateInPast(now, now))
	assert.False(t, isDateInPast(now.AddDate(0, 0, 1), now))
}
