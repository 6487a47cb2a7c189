package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/fieldops/internal/models"
	"github.com/iudanet/fieldops/pkg/api"
)

// maxErrorBody ограничивает чтение тела ответа с ошибкой
const maxErrorBody = 64 << 10

// HeaderIdempotencyKey позволяет backend отбросить повторную доставку мутации
const HeaderIdempotencyKey = "Idempotency-Key"

// Client представляет HTTP клиент для взаимодействия с backend
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// BaseURL returns the backend base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Replay выполняет сохранённую мутацию.
// Любой не-2xx ответ или ошибка транспорта возвращается как *ReplayError.
func (c *Client) Replay(ctx context.Context, mutation *models.MutationRequest) error {
	var bodyReader io.Reader
	if len(mutation.Body) > 0 {
		bodyReader = bytes.NewReader(mutation.Body)
	}

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(mutation.Method), c.resolve(mutation.URL), bodyReader)
	if err != nil {
		// Некорректный запрос никогда не станет корректным
		return &ReplayError{Class: ClassPermanent, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	for k, v := range mutation.Headers {
		req.Header.Set(k, v)
	}
	if len(mutation.Body) > 0 && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ReplayError{Class: ClassRetryable, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// Дочитываем тело, чтобы соединение вернулось в пул
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	return &ReplayError{
		Class:      ClassifyStatus(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Message:    errorMessage(respBody),
	}
}

// Ping проверяет доступность backend через GET /health
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("health check failed with status %d", resp.StatusCode)
	}

	// Тело не обязательно JSON, статус проверяется только если он есть
	var health api.HealthResponse
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if json.Unmarshal(body, &health) == nil && health.Status != "" && health.Status != "ok" {
		return fmt.Errorf("backend reports status %q", health.Status)
	}

	return nil
}

// resolve разрешает относительный путь относительно адреса backend
func (c *Client) resolve(rawURL string) string {
	if strings.HasPrefix(rawURL, "/") {
		return c.baseURL + rawURL
	}
	return rawURL
}

// errorMessage извлекает сообщение из тела ответа с ошибкой
func errorMessage(body []byte) string {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		if errResp.Error != "" {
			return errResp.Error
		}
	}
	return strings.TrimSpace(string(body))
}
