package ocrservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с OCR-сервисом распознавания платежных документов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента OCR-сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Recognize распознает текст платежного документа по URL изображения
func (c *Client) Recognize(ctx context.Context, imageURL string) (*RecognizeResponse, error) {
	url := fmt.Sprintf("%s/internal/ocr/recognize", c.baseURL)

	payload, err := json.Marshal(RecognizeRequest{ImageURL: imageURL})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result RecognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

// RecognizeWithGracefulDegradation распознает текст с graceful degradation
// При недоступности OCR возвращает ErrServiceDegraded: документ сохраняется
// без распознанного текста и уходит в ручную проверку оператором
func (c *Client) RecognizeWithGracefulDegradation(ctx context.Context, imageURL string) (*RecognizeResponse, error) {
	c.log.Info("Recognizing payment slip image=%s", imageURL)

	result, err := c.Recognize(ctx, imageURL)
	if err != nil {
		c.log.Error("OCR service unavailable, applying graceful degradation for image=%s: %v", imageURL, err)
		return nil, fmt.Errorf("%w: image=%s, error=%v", ErrServiceDegraded, imageURL, err)
	}

	c.log.Info("Successfully recognized payment slip image=%s, confidence=%.2f", imageURL, result.Confidence)
	return result, nil
}
