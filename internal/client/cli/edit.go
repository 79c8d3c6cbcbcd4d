package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/iudanet/zametka/internal/models"
)

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing note id. Usage: zametka edit <id> [-title ...] [-content ...] [-tags ...]")
	}
	ref := args[0]

	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(c.io)
	title := fs.String("title", "", "new title")
	content := fs.String("content", "", "new body in markdown")
	tags := fs.String("tags", "", "new comma-separated tags")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	// В операцию попадают только явно переданные флаги
	var data models.OperationData
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			data.Title = title
		case "content":
			data.ContentMd = content
		case "tags":
			parsed := splitTags(*tags)
			data.Tags = &parsed
		}
	})

	if data.Title == nil && data.ContentMd == nil && data.Tags == nil {
		return fmt.Errorf("nothing to change: pass -title, -content or -tags")
	}

	note, err := c.notesService.UpdateNote(ctx, ref, data)
	if err != nil {
		return err
	}

	c.io.Println("✓ Note updated locally.")
	c.io.Printf("Title: %s\n", note.Title)
	c.io.Println("The change will be pushed to the server in the background.")

	return nil
}
