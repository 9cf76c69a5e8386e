package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runList(ctx context.Context) error {
	if err := c.ensureAuthenticated(ctx); err != nil {
		return err
	}

	reports, err := c.reportsService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	if len(reports) == 0 {
		c.io.Println("No reports found.")
		return nil
	}

	c.io.Printf("Reports (%d):\n", len(reports))
	c.io.Println()
	for _, report := range reports {
		c.io.Printf("  %s  [%s]  %s  (updated %s)\n",
			report.ID,
			report.Status,
			report.Title,
			report.UpdatedAt.Format(time.RFC3339),
		)
	}

	return nil
}
