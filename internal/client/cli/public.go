package cli

import (
	"context"
	"fmt"
	"strings"
	"text/template"
)

func (c *Cli) runPublic(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: zametka public <token>")
	}

	// Без авторизации: публичные заметки доступны всем по токену
	note, err := c.apiClient.GetPublicNote(ctx, args[0])
	if err != nil {
		return err
	}

	t, err := template.New("public").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(publicNoteTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	if err := t.Execute(c.io, note); err != nil {
		return fmt.Errorf("failed to render note: %w", err)
	}
	return nil
}
