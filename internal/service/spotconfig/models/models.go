package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на обновление конфигурации парковки
// Обновляются только переданные (не-nil) поля
type UpdateConfigRequest struct {
	UserID        int64                `json:"userId"`
	Name          *string              `json:"name,omitempty"`
	PricePerHour  *float64             `json:"pricePerHour,omitempty"`
	PricePerDay   *float64             `json:"pricePerDay,omitempty"`
	PricePerMonth *float64             `json:"pricePerMonth,omitempty"`
	TotalSlots    *int                 `json:"totalSlots,omitempty"`
	IsAlwaysOpen  *bool                `json:"isAlwaysOpen,omitempty"`
	Hours         *domain.WeekSchedule `json:"operatingHours,omitempty"`
}

// ToDomainUpdate конвертирует request в domain модель обновления
func (r *UpdateConfigRequest) ToDomainUpdate() domain.SpotConfigUpdate {
	return domain.SpotConfigUpdate{
		Name:          r.Name,
		PricePerHour:  r.PricePerHour,
		PricePerDay:   r.PricePerDay,
		PricePerMonth: r.PricePerMonth,
		TotalSlots:    r.TotalSlots,
		IsAlwaysOpen:  r.IsAlwaysOpen,
		Hours:         r.Hours,
	}
}

// Response модели

// ConfigResponse ответ с конфигурацией парковки
type ConfigResponse struct {
	SpotID         uuid.UUID           `json:"spotId"`
	OwnerID        int64               `json:"ownerId"`
	Name           string              `json:"name"`
	TotalSlots     int                 `json:"totalSlots"`
	AvailableSlots int                 `json:"availableSlots"`
	PricePerHour   float64             `json:"pricePerHour"`
	PricePerDay    *float64            `json:"pricePerDay,omitempty"`
	PricePerMonth  *float64            `json:"pricePerMonth,omitempty"`
	IsAlwaysOpen   bool                `json:"isAlwaysOpen"`
	OperatingHours domain.WeekSchedule `json:"operatingHours"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// FromDomainSpot конвертирует domain модель в DTO
func FromDomainSpot(s *domain.ParkingSpot) *ConfigResponse {
	if s == nil {
		return nil
	}

	return &ConfigResponse{
		SpotID:         s.ID,
		OwnerID:        s.OwnerID,
		Name:           s.Name,
		TotalSlots:     s.TotalSlots,
		AvailableSlots: s.AvailableSlots,
		PricePerHour:   s.PricePerHour,
		PricePerDay:    s.PricePerDay,
		PricePerMonth:  s.PricePerMonth,
		IsAlwaysOpen:   s.IsAlwaysOpen,
		OperatingHours: s.Hours,
		UpdatedAt:      s.UpdatedAt,
	}
}
