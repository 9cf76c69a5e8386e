package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/alecont1/relatorios-sub001/pkg/api"
)

// refresher реализует single-flight guard вокруг refresh вызова.
// N одновременных 401 порождают ровно один refresh: первый вызов
// становится владельцем, остальные встают в FIFO очередь ожидания и
// получают общий результат.
type refresher struct {
	mu       sync.Mutex
	inFlight bool
	waiters  []chan refreshResult
}

type refreshResult struct {
	err error
}

// refreshCredentials обменивает refresh token на новую пару токенов.
// Возвращает nil когда сессия обновлена и запрос можно повторять.
// При ошибке refresh сессия очищается и происходит принудительный
// возврат на login (см. forceReauth); все ожидающие получают ту же
// ошибку.
func (c *Client) refreshCredentials(ctx context.Context) error {
	c.refresher.mu.Lock()
	if c.refresher.inFlight {
		// Refresh уже идёт: встаём в очередь, второй вызов не делаем
		waiter := make(chan refreshResult, 1)
		c.refresher.waiters = append(c.refresher.waiters, waiter)
		c.refresher.mu.Unlock()

		select {
		case res := <-waiter:
			return res.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	c.refresher.inFlight = true
	c.refresher.mu.Unlock()

	err := c.refresh(ctx)

	c.refresher.mu.Lock()
	waiters := c.refresher.waiters
	c.refresher.waiters = nil
	c.refresher.inFlight = false
	c.refresher.mu.Unlock()

	// Будим очередь в порядке поступления; каждый ожидающий сам
	// повторит свой исходный запрос с токеном из сессии
	for _, waiter := range waiters {
		waiter <- refreshResult{err: err}
	}

	if err != nil {
		c.logger.Warn("token refresh failed, forcing re-authentication", "error", err)
		c.forceReauth()
		return err
	}

	return nil
}

// refresh выполняет сам refresh вызов. Refresh token передаётся как
// Bearer, тело не требуется; сервер ротирует refresh token.
func (c *Client) refresh(ctx context.Context) error {
	refreshToken, ok := c.session.RefreshToken()
	if !ok {
		return fmt.Errorf("no refresh token available")
	}

	status, respBody, err := c.dispatch(ctx, http.MethodPost, refreshPath, nil, refreshToken)
	if err != nil {
		return fmt.Errorf("refresh request failed: %w", err)
	}

	// 401 на самом refresh endpoint никогда не ретраится:
	// это защита от бесконечного цикла refresh → 401 → refresh
	if status < 200 || status >= 300 {
		return statusError(status, respBody)
	}

	var resp api.TokenResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return fmt.Errorf("failed to decode refresh response: %w", err)
	}

	c.session.SetTokens(resp.AccessToken, resp.RefreshToken)
	c.logger.Debug("access token refreshed")
	return nil
}

// forceReauth очищает сессию (logical logout) и отправляет пользователя
// на login, сохранив текущий путь для возврата. Навигация происходит
// не больше одного раза на неудавшийся refresh: её выполняет только
// владелец single-flight вызова.
func (c *Client) forceReauth() {
	c.session.Clear()

	if c.nav == nil {
		return
	}
	current := c.nav.CurrentPath()
	if current == loginPath {
		return
	}
	c.nav.GoToLogin(current)
}
