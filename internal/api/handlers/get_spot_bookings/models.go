package get_spot_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	spotID uuid.UUID,
	userID int64,
	statusStr string,
	dateStr string,
	includeInactiveStr string,
) (*models.GetSpotBookingsRequest, error) {
	req := &models.GetSpotBookingsRequest{
		UserID:          userID,
		SpotID:          spotID,
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим date если указана
	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	}

	// Парсим includeInactive если указан
	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
