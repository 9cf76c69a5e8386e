package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alecont1/relatorios-sub001/internal/client/autosave"
	"github.com/alecont1/relatorios-sub001/internal/models"
)

// runEdit открывает интерактивную сессию редактирования отчёта.
// Каждая правка поля уходит в autosave engine: бэкап пишется сразу,
// сохранение на сервер — после тихого периода.
func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: relatorios edit <report-id>")
	}
	reportID := args[0]

	if err := c.ensureAuthenticated(ctx); err != nil {
		return err
	}

	report, err := c.reportsService.Get(ctx, reportID)
	if err != nil {
		return fmt.Errorf("failed to load report: %w", err)
	}

	engine, err := c.reportsService.NewEditorEngine(report, true)
	if err != nil {
		return fmt.Errorf("failed to start editor: %w", err)
	}
	defer engine.Close()

	// Драфт от прошлой прерванной сессии
	if err := c.maybeRecoverDraft(ctx, engine, report); err != nil {
		return err
	}

	c.io.Printf("Editing %q (%s)\n", report.Title, report.ID)
	c.io.Println("Enter field=value to edit, 'save' to save now, 'quit' to finish.")
	c.io.Println()

	for {
		line, err := c.io.ReadInput("> ")
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		switch {
		case line == "quit" || line == "":
			// Финальное сохранение перед выходом
			engine.Flush(ctx)
			c.printSnapshot(engine.Snapshot())
			return nil

		case line == "save":
			engine.Flush(ctx)
			c.printSnapshot(engine.Snapshot())

		default:
			name, value, ok := strings.Cut(line, "=")
			if !ok {
				c.io.Println("Expected field=value, 'save' or 'quit'.")
				continue
			}
			if err := report.SetField(strings.TrimSpace(name), strings.TrimSpace(value)); err != nil {
				c.io.Printf("Failed to set field: %v\n", err)
				continue
			}
			engine.Observe(ctx, report)
		}
	}
}

// maybeRecoverDraft предлагает восстановить несохранённый драфт
func (c *Cli) maybeRecoverDraft(ctx context.Context, engine *autosave.Engine, report *models.Report) error {
	payload, ok := engine.LoadDraftBackup(ctx)
	if !ok {
		return nil
	}

	answer, err := c.io.ReadInput("Found an unsaved draft from a previous session. Recover it? [y/N]: ")
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if !strings.EqualFold(answer, "y") {
		engine.ClearDraftBackup(ctx)
		return nil
	}

	var recovered models.Report
	if err := json.Unmarshal(payload, &recovered); err != nil {
		c.io.Printf("Draft is unreadable, ignoring: %v\n", err)
		engine.ClearDraftBackup(ctx)
		return nil
	}

	*report = recovered
	// Восстановленный драфт — это правка относительно серверной версии
	engine.Observe(ctx, report)
	c.io.Println("Draft recovered.")
	return nil
}

func (c *Cli) printSnapshot(snap autosave.Snapshot) {
	switch snap.State {
	case autosave.StateSaved:
		c.io.Printf("✓ Saved at %s\n", snap.LastSaved.Format(time.RFC3339))
	case autosave.StateError:
		c.io.Printf("✗ Save failed: %s (draft backup retained)\n", snap.Err)
	default:
		c.io.Printf("State: %s\n", snap.State)
	}
}
