package cli

import (
	"context"
	"fmt"

	httpClient "github.com/alecont1/relatorios-sub001/internal/client/api"
	"github.com/alecont1/relatorios-sub001/internal/client/iocli"
	"github.com/alecont1/relatorios-sub001/internal/client/reports"
	"github.com/alecont1/relatorios-sub001/internal/client/session"
)

type Cli struct {
	io             iocli.IO
	apiClient      httpClient.ClientAPI
	session        *session.Session
	reportsService reports.Service
}

func New(io iocli.IO, apiClient httpClient.ClientAPI, sess *session.Session, reportsService reports.Service) *Cli {
	return &Cli{
		io:             io,
		apiClient:      apiClient,
		session:        sess,
		reportsService: reportsService,
	}
}

// Run выполняет команду. Ошибку печатает и завершает процесс main.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "list":
		return c.runList(ctx)
	case "edit":
		return c.runEdit(ctx, args)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage выводит справку по командам
func (c *Cli) PrintUsage() {
	c.io.Println("Usage: relatorios <command> [arguments]")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  login              Authenticate with the server")
	c.io.Println("  logout             Clear the current session")
	c.io.Println("  status             Show authentication status")
	c.io.Println("  list               List your reports")
	c.io.Println("  edit <report-id>   Edit a report with autosave")
}
