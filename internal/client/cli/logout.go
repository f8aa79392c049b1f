package cli

import (
	"context"
	"fmt"
	"log/slog"
)

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	// Выход всегда проходит, даже если сохраненной сессии не было
	if err := c.session.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	// Снимки данных принадлежат вышедшему пользователю
	if err := c.cache.Clear(ctx); err != nil {
		slog.Warn("failed to clear cached snapshots", "error", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")

	return nil
}
