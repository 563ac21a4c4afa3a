package update_spot_config

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/spotconfig/models"
)

// UpdateSpotConfigRequest HTTP request model
// Обновляются только переданные поля
type UpdateSpotConfigRequest struct {
	UserID        int64                `json:"userId"`
	Name          *string              `json:"name,omitempty"`
	PricePerHour  *float64             `json:"pricePerHour,omitempty"`
	PricePerDay   *float64             `json:"pricePerDay,omitempty"`
	PricePerMonth *float64             `json:"pricePerMonth,omitempty"`
	TotalSlots    *int                 `json:"totalSlots,omitempty"`
	IsAlwaysOpen  *bool                `json:"isAlwaysOpen,omitempty"`
	Hours         *domain.WeekSchedule `json:"operatingHours,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateSpotConfigRequest) ToServiceRequest() *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		UserID:        r.UserID,
		Name:          r.Name,
		PricePerHour:  r.PricePerHour,
		PricePerDay:   r.PricePerDay,
		PricePerMonth: r.PricePerMonth,
		TotalSlots:    r.TotalSlots,
		IsAlwaysOpen:  r.IsAlwaysOpen,
		Hours:         r.Hours,
	}
}
