package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
)

// splitTags разбирает строку вида "a,b,c" в список тегов.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(c.io)
	title := fs.String("title", "", "note title (required)")
	content := fs.String("content", "", "note body in markdown")
	tags := fs.String("tags", "", "comma-separated tags")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *title == "" {
		// Без флага спрашиваем интерактивно
		input, err := c.io.ReadInput("Title: ")
		if err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
		*title = input
	}

	note, err := c.notesService.CreateNote(ctx, *title, *content, splitTags(*tags))
	if err != nil {
		return err
	}

	c.io.Println("✓ Note saved locally.")
	c.io.Printf("ID: %s\n", note.LocalID)
	c.io.Println("It will be pushed to the server in the background.")

	return nil
}
