package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if !c.session.IsAuthenticated() {
		c.io.Println("Not authenticated.")
		return nil
	}

	// Сервер уведомляется best effort, сессия очищается всегда
	if err := c.apiClient.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logged out.")
	return nil
}
