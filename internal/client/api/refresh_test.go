package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alecont1/relatorios-sub001/internal/client/session"
	"github.com/alecont1/relatorios-sub001/pkg/api"
)

// navigatorFake записывает принудительные переходы на login
type navigatorFake struct {
	mu          sync.Mutex
	currentPath string
	returnPaths []string
}

func (n *navigatorFake) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.currentPath
}

func (n *navigatorFake) GoToLogin(returnPath string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.returnPaths = append(n.returnPaths, returnPath)
	n.currentPath = loginPath
}

func (n *navigatorFake) calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.returnPaths...)
}

// TestRefresh_Transparent: одиночный 401 прозрачно восстанавливается
// через refresh + replay, вызывающий видит успешный ответ
func TestRefresh_Transparent(t *testing.T) {
	var refreshCalls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/refresh":
			refreshCalls.Add(1)
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "Bearer refresh-old", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(api.TokenResponse{
				AccessToken:  "access-new",
				RefreshToken: "refresh-new",
				ExpiresIn:    900,
			})
		case "/api/v1/reports":
			if r.Header.Get("Authorization") != "Bearer access-new" {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "token expired"})
				return
			}
			_ = json.NewEncoder(w).Encode(api.ListReportsResponse{Total: 3})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	sess := session.New()
	sess.SetTokens("access-stale", "refresh-old")
	client := NewClient(server.URL, sess)

	resp, err := client.ListReports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, int64(1), refreshCalls.Load())

	// Сессия обновлена ротированной парой
	token, _ := sess.AccessToken()
	assert.Equal(t, "access-new", token)
	refresh, _ := sess.RefreshToken()
	assert.Equal(t, "refresh-new", refresh)
}

// TestRefresh_SingleFlight: N одновременных 401 порождают ровно один
// refresh вызов, все запросы завершаются успешно с новым токеном
func TestRefresh_SingleFlight(t *testing.T) {
	const concurrent = 5

	var (
		refreshCalls atomic.Int64
		stale401s    atomic.Int64
	)
	// refresh не завершится, пока все N запросов не получат 401
	allStale := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/refresh":
			refreshCalls.Add(1)
			<-allStale
			_ = json.NewEncoder(w).Encode(api.TokenResponse{
				AccessToken:  "access-new",
				RefreshToken: "refresh-new",
				ExpiresIn:    900,
			})
		case "/api/v1/reports":
			if r.Header.Get("Authorization") != "Bearer access-new" {
				if stale401s.Add(1) == concurrent {
					close(allStale)
				}
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "token expired"})
				return
			}
			_ = json.NewEncoder(w).Encode(api.ListReportsResponse{Total: 1})
		}
	}))
	defer server.Close()

	sess := session.New()
	sess.SetTokens("access-stale", "refresh-old")
	client := NewClient(server.URL, sess)

	var wg sync.WaitGroup
	errs := make([]error, concurrent)
	for i := 0; i < concurrent; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.ListReports(context.Background())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "request %d", i)
	}
	assert.Equal(t, int64(1), refreshCalls.Load())
	assert.Equal(t, int64(concurrent), stale401s.Load())
}

// TestRefresh_NoDoubleRetry: запрос, получивший 401 после успешного
// replay, не ретраится второй раз и возвращает финальную ошибку
func TestRefresh_NoDoubleRetry(t *testing.T) {
	var (
		refreshCalls atomic.Int64
		reportCalls  atomic.Int64
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/refresh":
			refreshCalls.Add(1)
			_ = json.NewEncoder(w).Encode(api.TokenResponse{
				AccessToken:  "access-new",
				RefreshToken: "refresh-new",
				ExpiresIn:    900,
			})
		case "/api/v1/reports":
			// Бэкенд отвергает даже свежий токен
			reportCalls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "token rejected"})
		}
	}))
	defer server.Close()

	sess := session.New()
	sess.SetTokens("access-stale", "refresh-old")
	client := NewClient(server.URL, sess)

	_, err := client.ListReports(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsStatus(err, http.StatusUnauthorized))

	// Исходный запрос + ровно один replay, ровно один refresh
	assert.Equal(t, int64(2), reportCalls.Load())
	assert.Equal(t, int64(1), refreshCalls.Load())
}

// TestRefresh_FailureClearsSession: при ошибке refresh сессия очищается,
// переход на login происходит ровно один раз с return path, все
// ожидающие запросы получают ошибку
func TestRefresh_FailureClearsSession(t *testing.T) {
	const concurrent = 3

	var (
		refreshCalls atomic.Int64
		stale401s    atomic.Int64
	)
	allStale := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/refresh":
			refreshCalls.Add(1)
			<-allStale
			// Refresh token тоже истёк — сессия мертва
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "refresh token expired"})
		case "/api/v1/reports":
			if stale401s.Add(1) == concurrent {
				close(allStale)
			}
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "token expired"})
		}
	}))
	defer server.Close()

	sess := session.New()
	sess.SetTokens("access-stale", "refresh-old")
	nav := &navigatorFake{currentPath: "/reports/42/edit"}
	client := NewClient(server.URL, sess, WithNavigator(nav))

	var wg sync.WaitGroup
	errs := make([]error, concurrent)
	for i := 0; i < concurrent; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.ListReports(context.Background())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.Error(t, err, "request %d", i)
	}

	// Ровно один refresh, ровно один redirect с текущим путём
	assert.Equal(t, int64(1), refreshCalls.Load())
	require.Len(t, nav.calls(), 1)
	assert.Equal(t, "/reports/42/edit", nav.calls()[0])

	// Logical logout
	assert.False(t, sess.IsAuthenticated())
	_, ok := sess.AccessToken()
	assert.False(t, ok)
	_, ok = sess.RefreshToken()
	assert.False(t, ok)
}

// TestRefresh_NoRedirectFromLoginSurface: если пользователь уже на login,
// повторный переход не выполняется
func TestRefresh_NoRedirectFromLoginSurface(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "unauthorized"})
	}))
	defer server.Close()

	sess := session.New()
	sess.SetTokens("access-stale", "refresh-old")
	nav := &navigatorFake{currentPath: loginPath}
	client := NewClient(server.URL, sess, WithNavigator(nav))

	_, err := client.ListReports(context.Background())
	require.Error(t, err)

	assert.Empty(t, nav.calls())
	assert.False(t, sess.IsAuthenticated())
}

// TestRefresh_RefreshEndpointNeverRetried: 401 от самого refresh endpoint
// не запускает второй refresh (защита от бесконечного цикла)
func TestRefresh_RefreshEndpointNeverRetried(t *testing.T) {
	var refreshCalls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/auth/refresh" {
			refreshCalls.Add(1)
		}
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "unauthorized"})
	}))
	defer server.Close()

	sess := session.New()
	sess.SetTokens("access-stale", "refresh-old")
	client := NewClient(server.URL, sess)

	_, err := client.ListReports(context.Background())
	require.Error(t, err)
	assert.Equal(t, int64(1), refreshCalls.Load())
}
