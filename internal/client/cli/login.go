package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alecont1/relatorios-sub001/internal/validation"
	"github.com/alecont1/relatorios-sub001/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	// Запрашиваем email
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	// Запрашиваем пароль
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	resp, err := c.apiClient.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Email: %s\n", email)
	c.io.Printf("Access token expires in: %d seconds\n", resp.ExpiresIn)

	if expiresAt, ok := c.session.ExpiresAt(); ok {
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
	}

	return nil
}
