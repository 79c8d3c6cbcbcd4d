package cli

import (
	"context"
	"fmt"
	"strconv"
)

// parseServerID требует числовой (серверный) id: операции шеринга
// работают только с заметками, которые дошли до сервера.
func parseServerID(ref string) (int64, error) {
	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("sharing needs a server note id, got %q (run 'zametka sync' first)", ref)
	}
	return id, nil
}

func (c *Cli) runShare(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: zametka share <id> <email>")
	}

	noteID, err := parseServerID(args[0])
	if err != nil {
		return err
	}
	email := args[1]

	token, err := c.authService.AccessToken(ctx)
	if err != nil {
		return err
	}

	share, err := c.apiClient.ShareNote(ctx, token, noteID, email)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Note %d shared with %s\n", noteID, share.SharedWithEmail)
	return nil
}

func (c *Cli) runShareLink(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: zametka share-link <id>")
	}

	noteID, err := parseServerID(args[0])
	if err != nil {
		return err
	}

	token, err := c.authService.AccessToken(ctx)
	if err != nil {
		return err
	}

	link, err := c.apiClient.CreatePublicLink(ctx, token, noteID)
	if err != nil {
		return err
	}

	c.io.Println("✓ Public link created.")
	c.io.Printf("Link ID: %d\n", link.ID)
	c.io.Printf("URL:     %s\n", link.FullURL)
	if link.ExpiresAt != "" {
		c.io.Printf("Expires: %s\n", link.ExpiresAt)
	}

	return nil
}

func (c *Cli) runUnshareLink(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: zametka unshare-link <link-id>")
	}

	linkID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid link id: %q", args[0])
	}

	token, err := c.authService.AccessToken(ctx)
	if err != nil {
		return err
	}

	if err := c.apiClient.RevokePublicLink(ctx, token, linkID); err != nil {
		return err
	}

	c.io.Println("✓ Public link revoked.")
	return nil
}
