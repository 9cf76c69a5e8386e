package api

import (
	"context"

	"github.com/alecont1/relatorios-sub001/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the backend operations available to client services.
// Consumers depend on this interface rather than *Client so the pipeline
// can be mocked out in tests.
type ClientAPI interface {
	// Login аутентифицирует пользователя и сохраняет токены в сессии
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// Logout уведомляет сервер и очищает сессию
	Logout(ctx context.Context) error

	// GetReport загружает отчёт по идентификатору
	GetReport(ctx context.Context, reportID string) (*api.Report, error)

	// SaveReport сохраняет полное состояние отчёта
	SaveReport(ctx context.Context, reportID string, req api.SaveReportRequest) (*api.SaveReportResponse, error)

	// ListReports возвращает список отчётов пользователя
	ListReports(ctx context.Context) (*api.ListReportsResponse, error)
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)
