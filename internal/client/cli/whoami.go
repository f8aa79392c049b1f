package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runWhoami(ctx context.Context, args []string) error {
	c.io.Println("=== Current Identity ===")
	c.io.Println()

	user := c.session.Identity()
	if user == nil {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'splitbill login' to authenticate.")
		return nil
	}

	// --remote перечитывает профиль с сервера и обновляет кэш
	if len(args) > 0 && (args[0] == "--remote" || args[0] == "-remote") {
		refreshed, err := c.session.Refresh(ctx)
		if err != nil {
			return fmt.Errorf("failed to refresh identity: %w", err)
		}
		user = refreshed
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("ID:    %d\n", user.ID)
	c.io.Printf("Name:  %s\n", user.Name)
	c.io.Printf("Email: %s\n", user.Email)

	return nil
}
