package spotconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
	"github.com/m04kA/SMC-ParkingService/internal/service/spotconfig/models"
)

// Service сервис для работы с конфигурацией парковки:
// тарифы, вместимость и расписание работы
type Service struct {
	spotRepo SpotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(spotRepo SpotRepository, logger Logger) *Service {
	return &Service{
		spotRepo: spotRepo,
		logger:   logger,
	}
}

// Get возвращает конфигурацию парковки
// Конфигурация открыта для чтения любому пользователю - по ней строится
// сетка доступных слотов
func (s *Service) Get(ctx context.Context, spotID uuid.UUID) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching config for spot=%s", spotID)

	spot, err := s.getSpot(ctx, spotID, "Get")
	if err != nil {
		return nil, err
	}

	return models.FromDomainSpot(spot), nil
}

// Update обновляет конфигурацию парковки
// Доступно только оператору парковки
func (s *Service) Update(ctx context.Context, spotID uuid.UUID, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating config for spot=%s by user=%d", spotID, req.UserID)

	// 1. Валидируем входные данные
	if err := s.validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed for spot=%s: %v", spotID, err)
		return nil, err
	}

	// 2. Получаем парковку для проверки прав доступа
	spot, err := s.getSpot(ctx, spotID, "Update")
	if err != nil {
		return nil, err
	}

	// 3. Проверяем права доступа (только оператор парковки)
	if !spot.IsOwnedBy(req.UserID) {
		s.logger.Warn("Update: user=%d is not an operator of spot=%s", req.UserID, spotID)
		return nil, ErrAccessDenied
	}

	// 4. Применяем обновление
	if err := s.spotRepo.UpdateConfig(ctx, spotID, req.ToDomainUpdate()); err != nil {
		if errors.Is(err, spotRepo.ErrSpotNotFound) {
			s.logger.Warn("Update: spot=%s not found during update", spotID)
			return nil, ErrSpotNotFound
		}
		s.logger.Error("Update: repository error for spot=%s: %v", spotID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 5. Возвращаем актуальную конфигурацию
	updated, err := s.getSpot(ctx, spotID, "Update")
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated config for spot=%s", spotID)
	return models.FromDomainSpot(updated), nil
}

// validateUpdate проверяет корректность обновляемых полей
func (s *Service) validateUpdate(req *models.UpdateConfigRequest) error {
	if req.Name != nil && *req.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	if req.PricePerHour != nil && *req.PricePerHour < 0 {
		return fmt.Errorf("%w: pricePerHour cannot be negative", ErrInvalidInput)
	}
	if req.PricePerDay != nil && *req.PricePerDay < 0 {
		return fmt.Errorf("%w: pricePerDay cannot be negative", ErrInvalidInput)
	}
	if req.PricePerMonth != nil && *req.PricePerMonth < 0 {
		return fmt.Errorf("%w: pricePerMonth cannot be negative", ErrInvalidInput)
	}
	if req.TotalSlots != nil {
		if *req.TotalSlots < domain.MinTotalSlots || *req.TotalSlots > domain.MaxTotalSlots {
			return fmt.Errorf("%w: totalSlots must be between %d and %d",
				ErrInvalidInput, domain.MinTotalSlots, domain.MaxTotalSlots)
		}
	}
	return nil
}

func (s *Service) getSpot(ctx context.Context, spotID uuid.UUID, op string) (*domain.ParkingSpot, error) {
	spot, err := s.spotRepo.GetByID(ctx, spotID)
	if err != nil {
		if errors.Is(err, spotRepo.ErrSpotNotFound) {
			s.logger.Warn("%s: spot=%s not found", op, spotID)
			return nil, ErrSpotNotFound
		}
		s.logger.Error("%s: repository error for spot=%s: %v", op, spotID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return spot, nil
}
