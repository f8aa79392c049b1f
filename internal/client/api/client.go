package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/splitbill/internal/client/storage"
)

// RequestHook преобразует исходящий запрос перед отправкой
type RequestHook func(ctx context.Context, req *http.Request) error

// ResponseHook наблюдает каждый ответ (успешный или нет) до того,
// как его увидит вызывающий код
type ResponseHook func(ctx context.Context, resp *http.Response)

// Client представляет HTTP клиент для взаимодействия с сервером.
// Единственная точка выхода наружу: каждый запрос проходит через цепочку
// request hooks (подстановка bearer токена, request id), каждый ответ —
// через цепочку response hooks (реакция на 401).
type Client struct {
	httpClient     *http.Client
	creds          storage.CredStore
	onUnauthorized func()
	baseURL        string
	requestHooks   []RequestHook
	responseHooks  []ResponseHook
}

// NewClient создает новый API клиент.
// creds используется только для чтения токена и его сброса при 401.
func NewClient(baseURL string, creds storage.CredStore) *Client {
	c := &Client{
		baseURL: baseURL,
		creds:   creds,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
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

	// Фиксированные hooks: порядок важен
	c.requestHooks = []RequestHook{c.attachBearer, attachRequestID}
	c.responseHooks = []ResponseHook{c.observeUnauthorized}

	return c
}

// SetUnauthorizedHandler задает callback, вызываемый после сброса
// учетных данных на 401 (принудительный logout)
func (c *Client) SetUnauthorizedHandler(fn func()) {
	c.onUnauthorized = fn
}

// AddRequestHook добавляет преобразование запроса в конец цепочки
func (c *Client) AddRequestHook(hook RequestHook) {
	c.requestHooks = append(c.requestHooks, hook)
}

// AddResponseHook добавляет наблюдателя ответов в конец цепочки
func (c *Client) AddResponseHook(hook ResponseHook) {
	c.responseHooks = append(c.responseHooks, hook)
}

// attachBearer подставляет Authorization: Bearer <token>, если токен
// сохранен; без токена запрос уходит анонимным (login/register)
func (c *Client) attachBearer(ctx context.Context, req *http.Request) error {
	token, err := c.creds.Token(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read token: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

// attachRequestID помечает каждый запрос уникальным id для корреляции
// с серверными логами
func attachRequestID(ctx context.Context, req *http.Request) error {
	req.Header.Set("X-Request-Id", uuid.NewString())
	return nil
}

// observeUnauthorized — фиксированный наблюдатель 401: сбрасывает
// сохраненные учетные данные и дергает onUnauthorized. Выполняется
// независимо от того, как вызывающий код обработает ошибку.
// Сброс идемпотентен: повторный 401 при уже очищенном хранилище — no-op.
func (c *Client) observeUnauthorized(ctx context.Context, resp *http.Response) {
	if resp.StatusCode != http.StatusUnauthorized {
		return
	}

	if err := c.creds.Purge(ctx); err != nil {
		slog.Warn("failed to purge credentials on 401", "error", err)
	}

	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

// doRequest выполняет HTTP запрос через цепочки hooks
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, result any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Цепочка преобразований запроса
	for _, hook := range c.requestHooks {
		if err := hook(ctx, req); err != nil {
			return fmt.Errorf("request hook failed: %w", err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Цепочка наблюдателей ответа: отрабатывает и на ошибочных статусах
	for _, hook := range c.responseHooks {
		hook(ctx, resp)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
