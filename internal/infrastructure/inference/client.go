// Package inference содержит общий HTTP-клиент для размещённых моделей
// (Hugging Face Inference API и совместимые сервера).
package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"vision-speech/internal/domain/entity"
)

// maxErrorBody сколько байт тела ответа сохраняется в ошибке
const maxErrorBody = 512

// Client отправляет запросы к одной модели.
type Client struct {
	Service    string // имя сервиса для ошибок и логов
	URL        string
	Token      string
	HTTPClient *http.Client
}

// NewClient создаёт клиент с таймаутом на весь запрос.
func NewClient(service, url, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		Service:    service,
		URL:        url,
		Token:      token,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Post отправляет тело с указанным Content-Type и декодирует JSON-ответ в out.
func (c *Client) Post(ctx context.Context, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, body)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", c.Service, err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &entity.BackendError{Service: c.Service, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ResponseError(c.Service, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", c.Service, err)
	}
	return nil
}

// ResponseError превращает неуспешный ответ в *entity.BackendError.
func ResponseError(service string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &entity.BackendError{
		Service: service,
		Status:  resp.StatusCode,
		Body:    strings.TrimSpace(string(body)),
	}
}
