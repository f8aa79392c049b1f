package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/splitbill/internal/client/balance"
	"github.com/iudanet/splitbill/pkg/api"
)

func (c *Cli) runDashboard(ctx context.Context, args []string) error {
	user, err := c.requireAuth()
	if err != nil {
		return err
	}

	cached := len(args) > 0 && (args[0] == "--cached" || args[0] == "-cached")

	var (
		groups    []api.Group
		expenses  []api.Expense
		fetchedAt time.Time
	)

	if cached {
		groups, expenses, fetchedAt, err = c.loadSnapshots(ctx)
		if err != nil {
			return err
		}
	} else {
		groups, expenses, err = c.fetchDashboard(ctx)
		if err != nil {
			return err
		}

		// Обновляем снимки для offline режима; ошибка кэша не
		// должна ломать уже успешно полученный dashboard
		if err := c.cache.SaveGroups(ctx, groups); err != nil {
			slog.Warn("failed to cache groups snapshot", "error", err)
		}
		if err := c.cache.SaveExpenses(ctx, expenses); err != nil {
			slog.Warn("failed to cache expenses snapshot", "error", err)
		}
	}

	c.io.Printf("=== Dashboard — %s ===\n", user.Name)
	if cached {
		c.io.Printf("(cached data from %s)\n", fetchedAt.Format(time.RFC3339))
	}
	c.io.Println()

	sum := balance.Compute(user.ID, expenses)
	c.io.Printf("You owe:      %s\n", formatAmount(sum.YouOwe))
	c.io.Printf("You are owed: %s\n", formatAmount(sum.YouAreOwed))
	c.io.Printf("Net balance:  %s\n", formatAmount(sum.Net()))
	c.io.Println()

	c.io.Printf("Groups (%d):\n", len(groups))
	for _, g := range groups {
		c.io.Printf("  [%d] %s (%d member(s))\n", g.ID, g.Name, len(g.Members))
	}
	c.io.Println()

	c.io.Printf("Recent expenses (%d):\n", len(expenses))
	for i, e := range expenses {
		if i >= 10 {
			c.io.Printf("  ... and %d more\n", len(expenses)-i)
			break
		}
		c.io.Printf("  [%d] %s — %s, paid by %s\n",
			e.ID, e.Description, formatAmount(e.Amount), userRefName(e.PaidBy))
	}

	return nil
}

// fetchDashboard загружает группы и расходы параллельно.
// Join по принципу "все или ничего": если одна из выборок упала,
// падает весь dashboard — частичные данные не показываются молча.
func (c *Cli) fetchDashboard(ctx context.Context) ([]api.Group, []api.Expense, error) {
	var (
		groups   []api.Group
		expenses []api.Expense
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		groups, err = c.client.ListGroups(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		expenses, err = c.client.ListExpenses(gctx, 0)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("dashboard fetch failed: %w", err)
	}

	return groups, expenses, nil
}

// loadSnapshots читает последние сохраненные снимки
func (c *Cli) loadSnapshots(ctx context.Context) ([]api.Group, []api.Expense, time.Time, error) {
	groups, fetchedAt, err := c.cache.Groups(ctx)
	if err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("no cached dashboard, run 'splitbill dashboard' online first: %w", err)
	}

	expenses, _, err := c.cache.Expenses(ctx)
	if err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("no cached dashboard, run 'splitbill dashboard' online first: %w", err)
	}

	return groups, expenses, fetchedAt, nil
}
