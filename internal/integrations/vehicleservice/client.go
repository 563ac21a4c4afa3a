package vehicleservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с VehicleService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента VehicleService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSelectedVehicle получает выбранное транспортное средство пользователя
func (c *Client) GetSelectedVehicle(ctx context.Context, userID int64) (*Vehicle, error) {
	url := fmt.Sprintf("%s/internal/users/%d/vehicles/selected", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid user ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrVehicleNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var vehicle Vehicle
	if err := json.NewDecoder(resp.Body).Decode(&vehicle); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &vehicle, nil
}

// GetSelectedVehicleWithGracefulDegradation получает выбранный транспорт с graceful degradation
// При недоступности VehicleService возвращает ErrServiceDegraded, что позволяет
// создать бронирование без денормализованного номера автомобиля
func (c *Client) GetSelectedVehicleWithGracefulDegradation(ctx context.Context, userID int64) (*Vehicle, error) {
	c.log.Info("Fetching selected vehicle for user_id=%d", userID)

	vehicle, err := c.GetSelectedVehicle(ctx, userID)
	if err != nil {
		// Отсутствие выбранного транспорта - бизнес-ошибка, пробрасываем дальше
		if err == ErrVehicleNotFound {
			c.log.Info("No selected vehicle found for user_id=%d", userID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		c.log.Error("VehicleService unavailable, applying graceful degradation for user_id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: user_id=%d, error=%v", ErrServiceDegraded, userID, err)
	}

	c.log.Info("Successfully fetched vehicle for user_id=%d, plate=%s", userID, vehicle.LicensePlate)
	return vehicle, nil
}
