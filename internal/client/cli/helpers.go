package cli

import (
	"context"
	"fmt"

	"github.com/alecont1/relatorios-sub001/internal/validation"
	"github.com/alecont1/relatorios-sub001/pkg/api"
)

// ensureAuthenticated логинит пользователя, если сессия пуста.
// Токены живут только в памяти процесса, поэтому каждый запуск клиента
// начинается с аутентификации; внутри запуска истёкший access token
// прозрачно обновляется pipeline'ом.
func (c *Cli) ensureAuthenticated(ctx context.Context) error {
	if c.session.IsAuthenticated() {
		return nil
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if _, err := c.apiClient.Login(ctx, api.LoginRequest{Email: email, Password: password}); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	return nil
}
