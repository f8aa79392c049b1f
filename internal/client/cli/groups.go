package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/splitbill/internal/validation"
	"github.com/iudanet/splitbill/pkg/api"
)

func (c *Cli) runGroups(ctx context.Context, args []string) error {
	if _, err := c.requireAuth(); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: splitbill groups <list|show|create|update|delete|invite|add-member>")
	}

	switch args[0] {
	case "list":
		return c.runGroupsList(ctx)
	case "show":
		if len(args) < 2 {
			return fmt.Errorf("usage: splitbill groups show <id>")
		}
		id, err := parseID(args[1], "group")
		if err != nil {
			return err
		}
		return c.runGroupShow(ctx, id)
	case "create":
		return c.runGroupCreate(ctx)
	case "update":
		if len(args) < 2 {
			return fmt.Errorf("usage: splitbill groups update <id>")
		}
		id, err := parseID(args[1], "group")
		if err != nil {
			return err
		}
		return c.runGroupUpdate(ctx, id)
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: splitbill groups delete <id>")
		}
		id, err := parseID(args[1], "group")
		if err != nil {
			return err
		}
		return c.runGroupDelete(ctx, id)
	case "invite":
		if len(args) < 3 {
			return fmt.Errorf("usage: splitbill groups invite <id> <email>")
		}
		id, err := parseID(args[1], "group")
		if err != nil {
			return err
		}
		return c.runGroupInvite(ctx, id, args[2])
	case "add-member":
		if len(args) < 3 {
			return fmt.Errorf("usage: splitbill groups add-member <id> <email>")
		}
		id, err := parseID(args[1], "group")
		if err != nil {
			return err
		}
		return c.runGroupAddMember(ctx, id, args[2])
	default:
		return fmt.Errorf("unknown groups subcommand: %s", args[0])
	}
}

func (c *Cli) runGroupsList(ctx context.Context) error {
	c.io.Println("=== Your Groups ===")
	c.io.Println()

	groups, err := c.client.ListGroups(ctx)
	if err != nil {
		return fmt.Errorf("failed to list groups: %w", err)
	}

	if len(groups) == 0 {
		c.io.Println("No groups found.")
		c.io.Println()
		c.io.Println("Use 'splitbill groups create' to create your first group.")
		return nil
	}

	c.io.Printf("Found %d group(s):\n", len(groups))
	c.io.Println()

	for _, g := range groups {
		c.io.Printf("  [%d] %s", g.ID, g.Name)
		if g.Description != "" {
			c.io.Printf(" — %s", g.Description)
		}
		c.io.Printf(" (%d member(s))\n", len(g.Members))
	}

	return nil
}

func (c *Cli) runGroupShow(ctx context.Context, id int64) error {
	group, err := c.client.GetGroup(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get group: %w", err)
	}

	c.io.Printf("=== Group: %s ===\n", group.Name)
	c.io.Println()
	c.io.Printf("ID:          %d\n", group.ID)
	if group.Description != "" {
		c.io.Printf("Description: %s\n", group.Description)
	}
	if group.CreatedAt != "" {
		c.io.Printf("Created:     %s\n", group.CreatedAt)
	}

	c.io.Println()
	if len(group.Members) == 0 {
		c.io.Println("No members.")
		return nil
	}

	c.io.Printf("Members (%d):\n", len(group.Members))
	for _, m := range group.Members {
		c.io.Printf("  [%d] %s\n", m.UserID, m.UserName)
	}

	return nil
}

func (c *Cli) runGroupCreate(ctx context.Context) error {
	c.io.Println("=== Create Group ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if err := validation.ValidateName(name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	description, err := c.io.ReadInput("Description (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	group, err := c.client.CreateGroup(ctx, api.CreateGroupRequest{
		Name:        name,
		Description: description,
	})
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Group created with id %d\n", group.ID)

	return nil
}

func (c *Cli) runGroupUpdate(ctx context.Context, id int64) error {
	c.io.Println("=== Update Group ===")
	c.io.Println("Leave a field empty to keep the current value.")
	c.io.Println()

	name, err := c.io.ReadInput("New name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}

	description, err := c.io.ReadInput("New description: ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	// Частичное обновление: пустые поля не отправляются
	var req api.UpdateGroupRequest
	if name = strings.TrimSpace(name); name != "" {
		req.Name = &name
	}
	if description = strings.TrimSpace(description); description != "" {
		req.Description = &description
	}

	if req.Name == nil && req.Description == nil {
		c.io.Println("Nothing to update.")
		return nil
	}

	group, err := c.client.UpdateGroup(ctx, id, req)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Group %d updated: %s\n", group.ID, group.Name)

	return nil
}

func (c *Cli) runGroupDelete(ctx context.Context, id int64) error {
	ok, err := c.io.Confirm(fmt.Sprintf("Delete group %d and all its expenses?", id))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.client.DeleteGroup(ctx, id); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	c.io.Printf("✓ Group %d deleted\n", id)
	return nil
}

func (c *Cli) runGroupInvite(ctx context.Context, id int64, email string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	if err := c.client.SendInvitation(ctx, id, email); err != nil {
		return fmt.Errorf("failed to send invitation: %w", err)
	}

	c.io.Printf("✓ Invitation sent to %s\n", email)
	return nil
}

func (c *Cli) runGroupAddMember(ctx context.Context, id int64, email string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	group, err := c.client.AddMember(ctx, id, email)
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}

	c.io.Printf("✓ %s added to %s\n", email, group.Name)
	return nil
}
