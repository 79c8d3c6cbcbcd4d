package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/zametka/internal/client/notes"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()
	c.io.Println("Syncing with server...")

	status, err := c.notesService.SyncNow(ctx)
	if err != nil {
		if errors.Is(err, notes.ErrSyncInProgress) {
			c.io.Println("A sync is already running, skipping.")
			return nil
		}
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Synchronization finished.")
	if status.LastSync != nil {
		c.io.Printf("Last sync: %s\n", status.LastSync.Format(time.RFC3339))
	}
	if status.PendingOperations > 0 {
		c.io.Printf("⚠️  %d operation(s) still pending, run 'zametka sync' again later.\n", status.PendingOperations)
	} else {
		c.io.Println("All changes delivered to the server.")
	}

	return nil
}
