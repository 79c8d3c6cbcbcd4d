package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runList(ctx context.Context) error {
	c.io.Println("=== Notes ===")
	c.io.Println()

	notes, err := c.notesService.FetchNotes(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch notes: %w", err)
	}

	if len(notes) == 0 {
		c.io.Println("No notes yet. Create one with 'zametka add -title ...'.")
		return nil
	}

	for _, n := range notes {
		id := n.LocalID
		if n.ServerID != 0 {
			id = fmt.Sprintf("%d", n.ServerID)
		}

		marker := " "
		if !n.Synced {
			marker = "*" // ещё не отправлена на сервер
		}

		line := fmt.Sprintf("%s [%s] %s", marker, id, n.Title)
		if len(n.Tags) > 0 {
			line += "  #" + strings.Join(n.Tags, " #")
		}
		c.io.Println(line)
	}

	c.io.Println()
	c.io.Printf("%d note(s). Entries marked with * are not synced yet.\n", len(notes))

	return nil
}
