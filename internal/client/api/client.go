package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/alecont1/relatorios-sub001/internal/client/session"
	"github.com/alecont1/relatorios-sub001/pkg/api"
)

const (
	refreshPath = "/api/v1/auth/refresh"
	loginPath   = "/login"
)

// Client представляет HTTP клиент для взаимодействия с сервером.
// Все исходящие запросы проходят через pipeline: access token
// подставляется автоматически, 401 восстанавливается через refresh
// (см. refresh.go).
type Client struct {
	httpClient *http.Client
	session    *session.Session
	nav        Navigator
	logger     *slog.Logger
	baseURL    string

	refresher refresher
}

// Navigator is the UI shell collaborator for forced re-authentication.
// GoToLogin receives the path the user was on so the shell can return
// there after a fresh login.
type Navigator interface {
	CurrentPath() string
	GoToLogin(returnPath string)
}

// Option configures a Client.
type Option func(*Client)

// WithNavigator sets the re-authentication navigator. Without one the
// client only clears the session on refresh failure.
func WithNavigator(nav Navigator) Option {
	return func(c *Client) {
		c.nav = nav
	}
}

// WithHTTPClient replaces the underlying transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, sess *session.Session, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		session: sess,
		logger:  slog.Default(),
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

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Login аутентифицирует пользователя и сохраняет токены в сессии
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}

	c.session.SetTokens(resp.AccessToken, resp.RefreshToken)
	return &resp, nil
}

// Logout уведомляет сервер (best effort) и всегда очищает сессию
func (c *Client) Logout(ctx context.Context) error {
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil)
	if err != nil {
		c.logger.Warn("failed to logout on server", "error", err)
	}

	c.session.Clear()
	return nil
}

// GetReport загружает отчёт по идентификатору
func (c *Client) GetReport(ctx context.Context, reportID string) (*api.Report, error) {
	var resp api.Report
	path := fmt.Sprintf("/api/v1/reports/%s", reportID)
	err := c.doRequest(ctx, http.MethodGet, path, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get report request failed: %w", err)
	}
	return &resp, nil
}

// SaveReport сохраняет полное состояние отчёта (последняя версия побеждает)
func (c *Client) SaveReport(ctx context.Context, reportID string, req api.SaveReportRequest) (*api.SaveReportResponse, error) {
	var resp api.SaveReportResponse
	path := fmt.Sprintf("/api/v1/reports/%s", reportID)
	err := c.doRequest(ctx, http.MethodPut, path, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("save report request failed: %w", err)
	}
	return &resp, nil
}

// ListReports возвращает список отчётов пользователя
func (c *Client) ListReports(ctx context.Context) (*api.ListReportsResponse, error) {
	var resp api.ListReportsResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/reports", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list reports request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос через authenticated pipeline
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	return c.do(ctx, method, path, body, result, false)
}

// do выполняет один проход pipeline. retried отмечает запрос, который
// уже был повторён после refresh: такой запрос при повторном 401 не
// ретраится, а возвращает финальную ошибку авторизации.
func (c *Client) do(ctx context.Context, method, path string, body, result interface{}, retried bool) error {
	// Подставляем access token, если он есть; без токена запрос уходит
	// как есть и 401 — ожидаемый исход для вызывающего
	bearer, _ := c.session.AccessToken()

	status, respBody, err := c.dispatch(ctx, method, path, body, bearer)
	if err != nil {
		// Транспортные ошибки pipeline не скрывает и не ретраит
		return err
	}

	if status == http.StatusUnauthorized && !retried && path != refreshPath {
		// Без refresh token восстанавливаться нечем: 401 уходит
		// вызывающему как есть
		if _, ok := c.session.RefreshToken(); ok {
			if refreshErr := c.refreshCredentials(ctx); refreshErr != nil {
				return fmt.Errorf("authorization failed: %w", refreshErr)
			}
			// Повторяем исходный запрос ровно один раз с новым токеном
			return c.do(ctx, method, path, body, result, true)
		}
	}

	// Проверяем статус код
	if status < 200 || status >= 300 {
		return statusError(status, respBody)
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// dispatch выполняет сырой HTTP запрос без логики восстановления
func (c *Client) dispatch(ctx context.Context, method, path string, body interface{}, bearer string) (int, []byte, error) {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

// statusError декодирует envelope ошибки сервера в типизированную ошибку
func statusError(status int, respBody []byte) error {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(respBody, &errResp); err == nil && (errResp.Message != "" || errResp.Error != "") {
		msg := errResp.Message
		if msg == "" {
			msg = errResp.Error
		}
		return &api.StatusError{Status: status, Message: msg}
	}
	return &api.StatusError{Status: status, Message: string(respBody)}
}
