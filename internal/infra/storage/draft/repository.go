package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

const keyPrefix = "booking_draft:"

// Repository хранилище черновиков бронирований в Redis
// Черновики живут ограниченное время (TTL) и удаляются при использовании
type Repository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRepository создает новый экземпляр хранилища черновиков
func NewRepository(client *redis.Client, ttl time.Duration) *Repository {
	return &Repository{
		client: client,
		ttl:    ttl,
	}
}

// TTL возвращает время жизни черновика
func (r *Repository) TTL() time.Duration {
	return r.ttl
}

// Save сохраняет черновик с TTL хранилища
func (r *Repository) Save(ctx context.Context, d *domain.DraftBooking) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("%w: Save - %v", ErrMarshalDraft, err)
	}

	if err := r.client.Set(ctx, keyPrefix+d.ID.String(), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set key: %v", ErrRedisOp, err)
	}

	return nil
}

// Get получает черновик по ID
// Истекший по TTL черновик неотличим от несуществующего
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*domain.DraftBooking, error) {
	data, err := r.client.Get(ctx, keyPrefix+id.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get key: %v", ErrRedisOp, err)
	}

	var d domain.DraftBooking
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrUnmarshalDraft, err)
	}

	return &d, nil
}

// Delete удаляет черновик (вызывается при успешном создании бронирования)
// Удаление отсутствующего ключа не является ошибкой
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, keyPrefix+id.String()).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del key: %v", ErrRedisOp, err)
	}
	return nil
}
