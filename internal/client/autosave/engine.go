package autosave

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/alecont1/relatorios-sub001/internal/client/storage"
)

// State описывает текущую фазу машины автосохранения
type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
	StateSaving  State = "saving"
	StateSaved   State = "saved"
	StateError   State = "error"
)

// defaultDebounce — тихий период по умолчанию между последним
// изменением и отправкой на сервер
const defaultDebounce = 2 * time.Second

// SaveFunc is the caller-supplied remote save operation. The engine
// treats any returned error uniformly; message extraction is the
// caller's concern.
type SaveFunc func(ctx context.Context, data any) error

// Config configures an Engine for one editing session.
type Config struct {
	// InitialData seeds the buffer with the loaded document. Seeding
	// never triggers a save: it is the initial load, not a user edit.
	InitialData any

	// Save is the remote save operation. Required.
	Save SaveFunc

	// Drafts is the durable crash-recovery store. Optional: without it
	// the engine still debounces remote saves, there is just no local
	// backup.
	Drafts storage.DraftStorage

	Logger *slog.Logger

	// StorageKey identifies this editing session's draft record.
	StorageKey string

	// Debounce is the quiet period before a save fires.
	Debounce time.Duration

	// Enabled gates automatic saving; Flush works regardless.
	Enabled bool
}

// Snapshot is the externally visible autosave state. It is derived:
// on reload it is reconstructible from draft presence plus remote state.
type Snapshot struct {
	LastSaved time.Time
	State     State
	Err       string
}

// Engine converts a rapidly changing editing buffer into debounced
// remote saves while keeping a crash-recovery copy in durable local
// storage. Rapid edits coalesce: only the most recent edit schedules a
// save. Exactly one save may be in flight per engine instance.
type Engine struct {
	mu     sync.Mutex
	save   SaveFunc
	drafts storage.DraftStorage
	logger *slog.Logger

	storageKey string
	debounce   time.Duration
	enabled    bool

	state     State
	lastSaved time.Time
	errMsg    string
	latest    any
	gen       uint64
	seeded    bool
	timer     *time.Timer
	saving    bool
	closed    bool
}

// New creates an autosave engine in the idle state.
func New(cfg Config) (*Engine, error) {
	if cfg.Save == nil {
		return nil, fmt.Errorf("autosave: save function is required")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Engine{
		save:       cfg.Save,
		drafts:     cfg.Drafts,
		logger:     cfg.Logger,
		storageKey: cfg.StorageKey,
		debounce:   cfg.Debounce,
		enabled:    cfg.Enabled,
		state:      StateIdle,
		latest:     cfg.InitialData,
		seeded:     cfg.InitialData != nil,
	}, nil
}

// Observe feeds the engine the current document state. The first
// observation of an unseeded engine only records the data (initial
// load). Every later observation is a user edit: the draft backup is
// rewritten and the debounce timer re-armed, cancelling any previously
// scheduled save.
func (e *Engine) Observe(ctx context.Context, data any) {
	e.mu.Lock()
	e.latest = data
	if !e.seeded {
		// Начальная загрузка, не пользовательская правка
		e.seeded = true
		e.mu.Unlock()
		return
	}
	e.gen++
	if !e.enabled || e.closed {
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	// Бэкап пишется на каждую правку, а не только перед сохранением:
	// иначе crash в debounce-окне теряет последние изменения
	e.writeDraft(ctx, data)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.state = StatePending
	e.errMsg = ""

	// Cancel-before-reschedule: живёт только таймер последней правки
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.debounce, func() {
		e.performSave(context.Background())
	})
}

// Flush saves immediately, cancelling any pending debounce timer first
// so a user-triggered save is never followed by a redundant debounced
// one. A flush while a save is in flight is a no-op.
func (e *Engine) Flush(ctx context.Context) {
	e.mu.Lock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.mu.Unlock()

	e.performSave(ctx)
}

// performSave переводит машину в saving и вызывает save ровно один раз
// с самыми свежими данными
func (e *Engine) performSave(ctx context.Context) {
	e.mu.Lock()
	if e.saving || e.closed {
		e.mu.Unlock()
		return
	}
	data := e.latest
	gen := e.gen
	e.saving = true
	e.state = StateSaving
	e.mu.Unlock()

	err := e.save(ctx, data)

	e.mu.Lock()
	e.saving = false
	if err != nil {
		e.state = StateError
		e.errMsg = err.Error()
		e.mu.Unlock()
		// Бэкап сохраняется для ручного восстановления или повторной
		// попытки со следующей правкой
		e.logger.Warn("autosave failed, draft backup retained",
			"key", e.storageKey, "error", err)
		return
	}
	e.lastSaved = time.Now()
	if e.gen != gen && e.enabled && !e.closed {
		// Пока save был в полёте, пришла новая правка: pending-состояние
		// и бэкап принадлежат ей. Таймер перевзводится заново — её
		// собственный мог выстрелить в no-op, пока save держал флаг
		if e.timer != nil {
			e.timer.Stop()
		}
		e.timer = time.AfterFunc(e.debounce, func() {
			e.performSave(context.Background())
		})
		e.mu.Unlock()
		return
	}
	e.state = StateSaved
	e.errMsg = ""
	e.mu.Unlock()

	// Сервер теперь авторитетен, локальная копия избыточна
	e.ClearDraftBackup(ctx)
	e.logger.Debug("autosave completed", "key", e.storageKey)
}

// LoadDraftBackup returns the most recently written draft payload for
// this session, or absent if none exists or the read fails. Never fails.
func (e *Engine) LoadDraftBackup(ctx context.Context) (json.RawMessage, bool) {
	if e.drafts == nil || e.storageKey == "" {
		return nil, false
	}

	record, err := e.drafts.GetDraft(ctx, e.storageKey)
	if err != nil {
		if err != storage.ErrDraftNotFound {
			e.logger.Warn("failed to read draft backup", "key", e.storageKey, "error", err)
		}
		return nil, false
	}
	return record.Payload, true
}

// ClearDraftBackup deletes this session's draft record. Idempotent,
// never fails.
func (e *Engine) ClearDraftBackup(ctx context.Context) {
	if e.drafts == nil || e.storageKey == "" {
		return
	}

	if err := e.drafts.DeleteDraft(ctx, e.storageKey); err != nil && err != storage.ErrDraftNotFound {
		e.logger.Warn("failed to clear draft backup", "key", e.storageKey, "error", err)
	}
}

// Snapshot returns the current autosave state for display.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		State:     e.state,
		LastSaved: e.lastSaved,
		Err:       e.errMsg,
	}
}

// Close stops the debounce timer. An in-flight save is not cancelled:
// it runs to completion or failure.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// writeDraft сериализует данные и перезаписывает draft record.
// Ошибки хранилища проглатываются: автосохранение на сервер должно
// работать даже без локального бэкапа
func (e *Engine) writeDraft(ctx context.Context, data any) {
	if e.drafts == nil || e.storageKey == "" {
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		e.logger.Warn("failed to marshal draft backup", "key", e.storageKey, "error", err)
		return
	}

	record := &storage.DraftRecord{
		Key:       e.storageKey,
		Payload:   payload,
		WrittenAt: time.Now(),
	}
	if err := e.drafts.SaveDraft(ctx, record); err != nil {
		e.logger.Warn("failed to write draft backup", "key", e.storageKey, "error", err)
	}
}
