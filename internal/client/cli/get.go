package cli

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/iudanet/zametka/internal/models"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing note id. Usage: zametka get <id>")
	}

	note, err := c.notesService.GetNote(ctx, args[0])
	if err != nil {
		return err
	}

	return c.renderNote(noteTemplate, *note)
}

func (c *Cli) renderNote(tmpl string, note models.Note) error {
	t, err := template.New("note").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	if err := t.Execute(c.io, note); err != nil {
		return fmt.Errorf("failed to render note: %w", err)
	}
	return nil
}
