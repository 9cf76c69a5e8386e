package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/alecont1/relatorios-sub001/internal/client/api"
	"github.com/alecont1/relatorios-sub001/internal/client/autosave"
	"github.com/alecont1/relatorios-sub001/internal/client/storage"
	"github.com/alecont1/relatorios-sub001/internal/models"
	"github.com/alecont1/relatorios-sub001/internal/validation"
	"github.com/alecont1/relatorios-sub001/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// editorDebounce — тихий период автосохранения редактора отчётов
const editorDebounce = 2 * time.Second

// Service определяет интерфейс для reports.Service
type Service interface {
	// Get загружает отчёт с сервера
	Get(ctx context.Context, reportID string) (*models.Report, error)

	// List возвращает отчёты пользователя
	List(ctx context.Context) ([]models.Report, error)

	// Save отправляет полное состояние отчёта на сервер
	Save(ctx context.Context, report *models.Report) error

	// NewEditorEngine создаёт autosave engine для сессии редактирования отчёта
	NewEditorEngine(report *models.Report, enabled bool) (*autosave.Engine, error)
}

// service handles report CRUD and editor autosave wiring
type service struct {
	apiClient httpClient.ClientAPI
	drafts    storage.DraftStorage
	logger    *slog.Logger
}

// NewService creates a new reports service
func NewService(apiClient httpClient.ClientAPI, drafts storage.DraftStorage, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		drafts:    drafts,
		logger:    logger,
	}
}

// Get loads a report from the server
func (s *service) Get(ctx context.Context, reportID string) (*models.Report, error) {
	if err := validation.ValidateReportID(reportID); err != nil {
		return nil, fmt.Errorf("invalid report id: %w", err)
	}

	apiReport, err := s.apiClient.GetReport(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return fromAPI(apiReport), nil
}

// List returns the user's reports
func (s *service) List(ctx context.Context) ([]models.Report, error) {
	resp, err := s.apiClient.ListReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	reports := make([]models.Report, 0, len(resp.Reports))
	for i := range resp.Reports {
		reports = append(reports, *fromAPI(&resp.Reports[i]))
	}
	return reports, nil
}

// Save pushes the full report state to the server. Последняя версия
// клиента всегда побеждает: промежуточные состояния по отдельности не
// значимы.
func (s *service) Save(ctx context.Context, report *models.Report) error {
	if err := validation.ValidateReportID(report.ID); err != nil {
		return fmt.Errorf("invalid report id: %w", err)
	}
	if err := validation.ValidateTitle(report.Title); err != nil {
		return fmt.Errorf("invalid report title: %w", err)
	}

	req := api.SaveReportRequest{
		Title:  report.Title,
		Status: report.Status,
		Fields: report.Fields,
	}

	resp, err := s.apiClient.SaveReport(ctx, report.ID, req)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	report.UpdatedAt = resp.UpdatedAt
	s.logger.Debug("report saved", "report_id", report.ID)
	return nil
}

// NewEditorEngine создаёт autosave engine для сессии редактирования.
// Draft ключ привязан к отчёту: report:<id>. Save путь engine идёт
// через обычный Save и, соответственно, через authenticated pipeline.
func (s *service) NewEditorEngine(report *models.Report, enabled bool) (*autosave.Engine, error) {
	if err := validation.ValidateReportID(report.ID); err != nil {
		return nil, fmt.Errorf("invalid report id: %w", err)
	}

	return autosave.New(autosave.Config{
		InitialData: report,
		Save: func(ctx context.Context, data any) error {
			current, ok := data.(*models.Report)
			if !ok {
				return fmt.Errorf("unexpected autosave payload type %T", data)
			}
			return s.Save(ctx, current)
		},
		Drafts:     s.drafts,
		Logger:     s.logger,
		StorageKey: DraftKey(report.ID),
		Debounce:   editorDebounce,
		Enabled:    enabled,
	})
}

// DraftKey returns the draft store key for a report editing session.
func DraftKey(reportID string) string {
	return "report:" + reportID
}

// NewReport creates an empty local report for a template.
func NewReport(templateID, title string) *models.Report {
	now := time.Now()
	return &models.Report{
		ID:         uuid.New().String(),
		TemplateID: templateID,
		Title:      title,
		Status:     models.ReportStatusDraft,
		Fields:     json.RawMessage(`{}`),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// fromAPI конвертирует wire формат в доменную модель
func fromAPI(r *api.Report) *models.Report {
	return &models.Report{
		ID:         r.ID,
		TemplateID: r.TemplateID,
		Title:      r.Title,
		Status:     r.Status,
		Fields:     r.Fields,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
