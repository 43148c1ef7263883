package signservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом электронной подписи
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента SignService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSignatureRequest получает состояние запроса подписи по его ID
func (c *Client) GetSignatureRequest(ctx context.Context, requestID string) (*SignatureRequest, error) {
	reqURL := fmt.Sprintf("%s/internal/signature-requests/%s", c.baseURL, url.PathEscape(requestID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
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
		return nil, fmt.Errorf("%w: invalid request ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrRequestNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var signatureRequest SignatureRequest
	if err := json.NewDecoder(resp.Body).Decode(&signatureRequest); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &signatureRequest, nil
}

// GetSignatureRequestWithGracefulDegradation получает запрос подписи с graceful degradation
// При недоступности SignService возвращает ErrServiceDegraded - вызывающая сторона
// может отложить синхронизацию согласий и повторить позже
func (c *Client) GetSignatureRequestWithGracefulDegradation(ctx context.Context, requestID string) (*SignatureRequest, error) {
	c.log.Info("Fetching signature request id=%s", requestID)

	signatureRequest, err := c.GetSignatureRequest(ctx, requestID)
	if err != nil {
		// Бизнес-ошибку (запрос не найден) пробрасываем дальше как есть
		if errors.Is(err, ErrRequestNotFound) {
			c.log.Warn("Signature request id=%s not found", requestID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("SignService unavailable, applying graceful degradation for request id=%s: %v", requestID, err)
		return nil, fmt.Errorf("%w: request_id=%s, error=%v", ErrServiceDegraded, requestID, err)
	}

	c.log.Info("Successfully fetched signature request id=%s, status=%s", requestID, signatureRequest.Status)
	return signatureRequest, nil
}
