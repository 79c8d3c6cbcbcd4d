package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	isAuth, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !isAuth {
		c.io.Println("Auth: not authenticated")
		c.io.Println()
		c.io.Println("Run 'zametka login' to authenticate.")
		return nil
	}

	email, err := c.authService.CurrentEmail(ctx)
	if err != nil {
		return fmt.Errorf("failed to get auth data: %w", err)
	}

	c.io.Println("Auth: authenticated")
	c.io.Printf("Email: %s\n", email)
	c.io.Println()

	status := c.notesService.SyncStatus(ctx)

	if status.IsOnline {
		c.io.Println("Server: reachable")
	} else {
		c.io.Println("Server: offline")
	}

	if status.LastSync != nil {
		c.io.Printf("Last sync: %s\n", status.LastSync.Format(time.RFC3339))
	} else {
		c.io.Println("Last sync: never")
	}

	if status.PendingOperations > 0 {
		c.io.Printf("⚠️  Pending sync: %d operation(s) waiting\n", status.PendingOperations)
		c.io.Println("Run 'zametka sync' to push them to the server.")
	} else {
		c.io.Println("✓ All changes synchronized with server")
	}

	return nil
}
