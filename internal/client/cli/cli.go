// Package cli реализует командный интерфейс клиента zametka.
package cli

import (
	"context"
	"fmt"

	clientapi "github.com/iudanet/zametka/internal/client/api"
	"github.com/iudanet/zametka/internal/client/auth"
	"github.com/iudanet/zametka/internal/client/iocli"
	"github.com/iudanet/zametka/internal/client/notes"
)

// Cli binds the notes facade, the auth service and the raw API client
// to terminal commands.
type Cli struct {
	io           iocli.IO
	apiClient    *clientapi.Client
	authService  *auth.Service
	notesService *notes.Service
	version      string
}

// New создает CLI поверх готовых сервисов.
func New(
	io iocli.IO,
	apiClient *clientapi.Client,
	authService *auth.Service,
	notesService *notes.Service,
	version string,
) *Cli {
	return &Cli{
		io:           io,
		apiClient:    apiClient,
		authService:  authService,
		notesService: notesService,
		version:      version,
	}
}

// Run dispatches a single command and returns its error.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "list":
		return c.runList(ctx)
	case "get":
		return c.runGet(ctx, args)
	case "add":
		return c.runAdd(ctx, args)
	case "edit":
		return c.runEdit(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "share":
		return c.runShare(ctx, args)
	case "share-link":
		return c.runShareLink(ctx, args)
	case "unshare-link":
		return c.runUnshareLink(ctx, args)
	case "public":
		return c.runPublic(ctx, args)
	case "version":
		c.io.Printf("zametka %s\n", c.version)
		return nil
	case "help", "":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage выводит справку по командам.
func (c *Cli) PrintUsage() {
	c.io.Println("zametka - offline-first notes client")
	c.io.Println()
	c.io.Println("Usage: zametka [flags] <command> [args]")
	c.io.Println()
	c.io.Println("Auth commands:")
	c.io.Println("  register                         create an account")
	c.io.Println("  login                            log in")
	c.io.Println("  logout                           log out and clear the session")
	c.io.Println()
	c.io.Println("Note commands (work offline, sync in background):")
	c.io.Println("  list                             list notes")
	c.io.Println("  get <id>                         show one note")
	c.io.Println("  add -title <t> [-content <md>] [-tags a,b]")
	c.io.Println("  edit <id> [-title <t>] [-content <md>] [-tags a,b]")
	c.io.Println("  delete <id>                      delete a note")
	c.io.Println("  sync                             push pending changes and pull")
	c.io.Println("  status                           auth and sync status")
	c.io.Println()
	c.io.Println("Sharing commands (online only):")
	c.io.Println("  share <id> <email>               share a note with a user")
	c.io.Println("  share-link <id>                  create a public link")
	c.io.Println("  unshare-link <link-id>           revoke a public link")
	c.io.Println("  public <token>                   show a note by public token")
	c.io.Println()
	c.io.Println("Flags:")
	c.io.Println("  -server <url>                    server address")
	c.io.Println("  -db <path>                       local database path")
}
