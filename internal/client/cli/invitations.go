package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runInvitations(ctx context.Context, args []string) error {
	if _, err := c.requireAuth(); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: splitbill invitations <list|accept|reject>")
	}

	switch args[0] {
	case "list":
		return c.runInvitationsList(ctx)
	case "accept":
		if len(args) < 2 {
			return fmt.Errorf("usage: splitbill invitations accept <id>")
		}
		id, err := parseID(args[1], "invitation")
		if err != nil {
			return err
		}
		if err := c.client.AcceptInvitation(ctx, id); err != nil {
			return fmt.Errorf("failed to accept invitation: %w", err)
		}
		c.io.Printf("✓ Invitation %d accepted\n", id)
		return nil
	case "reject":
		if len(args) < 2 {
			return fmt.Errorf("usage: splitbill invitations reject <id>")
		}
		id, err := parseID(args[1], "invitation")
		if err != nil {
			return err
		}
		if err := c.client.RejectInvitation(ctx, id); err != nil {
			return fmt.Errorf("failed to reject invitation: %w", err)
		}
		c.io.Printf("✓ Invitation %d rejected\n", id)
		return nil
	default:
		return fmt.Errorf("unknown invitations subcommand: %s", args[0])
	}
}

func (c *Cli) runInvitationsList(ctx context.Context) error {
	c.io.Println("=== Your Invitations ===")
	c.io.Println()

	invitations, err := c.client.ListInvitations(ctx)
	if err != nil {
		return fmt.Errorf("failed to list invitations: %w", err)
	}

	if len(invitations) == 0 {
		c.io.Println("No invitations.")
		return nil
	}

	for _, inv := range invitations {
		c.io.Printf("  [%d] %s — %s\n", inv.ID, invitationGroupName(inv), inv.Status)
	}

	c.io.Println()
	c.io.Println("Use 'splitbill invitations accept <id>' or 'reject <id>'.")

	return nil
}
