package cli

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/alecont1/relatorios-sub001/internal/client/api"
	"github.com/alecont1/relatorios-sub001/internal/client/autosave"
	"github.com/alecont1/relatorios-sub001/internal/client/reports"
	"github.com/alecont1/relatorios-sub001/internal/client/session"
	"github.com/alecont1/relatorios-sub001/internal/client/storage"
	"github.com/alecont1/relatorios-sub001/internal/models"
)

const testReportID = "f47ac10b-58cc-4372-a567-0e02b2c3d479"

// editFixture связывает ServiceMock с настоящим autosave engine поверх
// map-backed хранилища драфтов
type editFixture struct {
	mu      sync.Mutex
	saved   []models.Report
	saveErr error
	drafts  map[string]*storage.DraftRecord
	service *reports.ServiceMock
}

func newEditFixture(t *testing.T, report *models.Report) *editFixture {
	t.Helper()

	f := &editFixture{drafts: map[string]*storage.DraftRecord{}}

	draftStore := &storage.DraftStorageMock{
		SaveDraftFunc: func(ctx context.Context, record *storage.DraftRecord) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.drafts[record.Key] = record
			return nil
		},
		GetDraftFunc: func(ctx context.Context, key string) (*storage.DraftRecord, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if record, ok := f.drafts[key]; ok {
				return record, nil
			}
			return nil, storage.ErrDraftNotFound
		},
		DeleteDraftFunc: func(ctx context.Context, key string) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.drafts, key)
			return nil
		},
	}

	f.service = &reports.ServiceMock{
		GetFunc: func(ctx context.Context, reportID string) (*models.Report, error) {
			copied := *report
			return &copied, nil
		},
		NewEditorEngineFunc: func(r *models.Report, enabled bool) (*autosave.Engine, error) {
			return autosave.New(autosave.Config{
				InitialData: r,
				Save: func(ctx context.Context, data any) error {
					current := data.(*models.Report)
					f.mu.Lock()
					defer f.mu.Unlock()
					if f.saveErr != nil {
						return f.saveErr
					}
					f.saved = append(f.saved, *current)
					return nil
				},
				Drafts:     draftStore,
				StorageKey: reports.DraftKey(r.ID),
				Debounce:   time.Minute, // в тестах сохраняет только Flush
				Enabled:    enabled,
			})
		},
	}

	return f
}

func (f *editFixture) savedReports() []models.Report {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Report(nil), f.saved...)
}

func TestCli_Edit_SaveOnQuit(t *testing.T) {
	report := &models.Report{
		ID:     testReportID,
		Title:  "Inspeção mensal",
		Status: models.ReportStatusDraft,
		Fields: json.RawMessage(`{}`),
	}
	f := newEditFixture(t, report)

	var out strings.Builder
	io := newIOMock([]string{"voltage=13.8kV", "current=120A", "quit"}, &out)

	c := New(io, &httpClient.ClientAPIMock{}, authedSession(), f.service)
	err := c.Run(context.Background(), "edit", []string{testReportID})

	require.NoError(t, err)

	saved := f.savedReports()
	require.Len(t, saved, 1)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(saved[0].Fields, &fields))
	assert.Equal(t, "13.8kV", fields["voltage"])
	assert.Equal(t, "120A", fields["current"])

	// Успешное сохранение удалило бэкап
	assert.Empty(t, f.drafts)
	assert.Contains(t, out.String(), "Saved at")
}

func TestCli_Edit_DraftBackupWrittenPerEdit(t *testing.T) {
	report := &models.Report{
		ID:     testReportID,
		Title:  "Inspeção mensal",
		Fields: json.RawMessage(`{}`),
	}
	f := newEditFixture(t, report)
	f.saveErr = assertErr("network unreachable")

	var out strings.Builder
	io := newIOMock([]string{"voltage=13.8kV", "save", "quit"}, &out)

	c := New(io, &httpClient.ClientAPIMock{}, authedSession(), f.service)
	err := c.Run(context.Background(), "edit", []string{testReportID})

	require.NoError(t, err)

	// Сохранение упало — бэкап остался
	f.mu.Lock()
	record, ok := f.drafts[reports.DraftKey(testReportID)]
	f.mu.Unlock()
	require.True(t, ok)

	var recovered models.Report
	require.NoError(t, json.Unmarshal(record.Payload, &recovered))

	var fields map[string]string
	require.NoError(t, json.Unmarshal(recovered.Fields, &fields))
	assert.Equal(t, "13.8kV", fields["voltage"])

	assert.Contains(t, out.String(), "Save failed")
	assert.Contains(t, out.String(), "draft backup retained")
}

func TestCli_Edit_RecoverDraft(t *testing.T) {
	report := &models.Report{
		ID:     testReportID,
		Title:  "Inspeção mensal",
		Fields: json.RawMessage(`{}`),
	}
	f := newEditFixture(t, report)

	// Драфт от прошлой сессии
	draftReport := *report
	require.NoError(t, draftReport.SetField("voltage", "13.8kV"))
	payload, err := json.Marshal(&draftReport)
	require.NoError(t, err)
	f.drafts[reports.DraftKey(testReportID)] = &storage.DraftRecord{
		Key:       reports.DraftKey(testReportID),
		Payload:   payload,
		WrittenAt: time.Now().Add(-time.Hour),
	}

	var out strings.Builder
	io := newIOMock([]string{"y", "quit"}, &out)

	c := New(io, &httpClient.ClientAPIMock{}, authedSession(), f.service)
	err = c.Run(context.Background(), "edit", []string{testReportID})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Draft recovered")

	// Восстановленные данные ушли на сервер при выходе
	saved := f.savedReports()
	require.Len(t, saved, 1)
	var fields map[string]string
	require.NoError(t, json.Unmarshal(saved[0].Fields, &fields))
	assert.Equal(t, "13.8kV", fields["voltage"])
}

func TestCli_Edit_DeclineDraftRecovery(t *testing.T) {
	report := &models.Report{
		ID:     testReportID,
		Title:  "Inspeção mensal",
		Fields: json.RawMessage(`{}`),
	}
	f := newEditFixture(t, report)

	f.drafts[reports.DraftKey(testReportID)] = &storage.DraftRecord{
		Key:       reports.DraftKey(testReportID),
		Payload:   json.RawMessage(`{"title":"stale"}`),
		WrittenAt: time.Now().Add(-time.Hour),
	}

	var out strings.Builder
	io := newIOMock([]string{"n", "quit"}, &out)

	c := New(io, &httpClient.ClientAPIMock{}, authedSession(), f.service)
	err := c.Run(context.Background(), "edit", []string{testReportID})

	require.NoError(t, err)

	// Отклонённый драфт удалён
	f.mu.Lock()
	_, ok := f.drafts[reports.DraftKey(testReportID)]
	f.mu.Unlock()
	assert.False(t, ok)
}

func TestCli_Edit_MissingArgument(t *testing.T) {
	var out strings.Builder
	io := newIOMock(nil, &out)

	c := New(io, &httpClient.ClientAPIMock{}, session.New(), &reports.ServiceMock{})
	err := c.Run(context.Background(), "edit", nil)

	require.Error(t, err)
}

// assertErr — маленький error helper для фикстуры
type assertErr string

func (e assertErr) Error() string { return string(e) }
