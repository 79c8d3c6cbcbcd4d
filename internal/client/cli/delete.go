package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing note id. Usage: zametka delete <id>")
	}
	ref := args[0]

	note, err := c.notesService.GetNote(ctx, ref)
	if err != nil {
		return err
	}

	answer, err := c.io.ReadInput(fmt.Sprintf("Delete note %q? [y/N]: ", note.Title))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.notesService.DeleteNote(ctx, ref); err != nil {
		return err
	}

	c.io.Println("✓ Note deleted locally.")
	c.io.Println("The deletion will be pushed to the server in the background.")

	return nil
}
