package cli

import (
	"context"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	if !c.session.IsAuthenticated() {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'relatorios login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")

	// Срок действия — только для отображения; решение об истечении
	// принимает сервер, клиент восстановится через refresh
	expiresAt, ok := c.session.ExpiresAt()
	if !ok {
		return nil
	}

	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))

	remaining := time.Until(expiresAt)
	if remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("Token has expired; it will be refreshed on the next request.")
	}

	return nil
}
