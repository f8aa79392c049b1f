package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/splitbill/internal/validation"
	"github.com/iudanet/splitbill/pkg/api"
)

func (c *Cli) runExpenses(ctx context.Context, args []string) error {
	if _, err := c.requireAuth(); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: splitbill expenses <list|show|add|update|delete>")
	}

	switch args[0] {
	case "list":
		// Необязательный позиционный аргумент — id группы
		var groupID int64
		if len(args) > 1 {
			id, err := parseID(args[1], "group")
			if err != nil {
				return err
			}
			groupID = id
		}
		return c.runExpensesList(ctx, groupID)
	case "show":
		if len(args) < 2 {
			return fmt.Errorf("usage: splitbill expenses show <id>")
		}
		id, err := parseID(args[1], "expense")
		if err != nil {
			return err
		}
		return c.runExpenseShow(ctx, id)
	case "add":
		return c.runExpenseAdd(ctx)
	case "update":
		if len(args) < 2 {
			return fmt.Errorf("usage: splitbill expenses update <id>")
		}
		id, err := parseID(args[1], "expense")
		if err != nil {
			return err
		}
		return c.runExpenseUpdate(ctx, id)
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: splitbill expenses delete <id>")
		}
		id, err := parseID(args[1], "expense")
		if err != nil {
			return err
		}
		return c.runExpenseDelete(ctx, id)
	default:
		return fmt.Errorf("unknown expenses subcommand: %s", args[0])
	}
}

func (c *Cli) runExpensesList(ctx context.Context, groupID int64) error {
	c.io.Println("=== Expenses ===")
	c.io.Println()

	expenses, err := c.client.ListExpenses(ctx, groupID)
	if err != nil {
		return fmt.Errorf("failed to list expenses: %w", err)
	}

	if len(expenses) == 0 {
		c.io.Println("No expenses found.")
		return nil
	}

	for _, e := range expenses {
		c.io.Printf("  [%d] %s — %s, paid by %s in %s (split %d ways)\n",
			e.ID, e.Description, formatAmount(e.Amount),
			userRefName(e.PaidBy), groupRefName(e.Group), len(e.SplitBetween))
	}

	return nil
}

func (c *Cli) runExpenseShow(ctx context.Context, id int64) error {
	e, err := c.client.GetExpense(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get expense: %w", err)
	}

	c.io.Printf("=== Expense: %s ===\n", e.Description)
	c.io.Println()
	c.io.Printf("ID:      %d\n", e.ID)
	c.io.Printf("Amount:  %s\n", formatAmount(e.Amount))
	c.io.Printf("Paid by: %s\n", userRefName(e.PaidBy))
	c.io.Printf("Group:   %s\n", groupRefName(e.Group))
	if e.CreatedAt != "" {
		c.io.Printf("Created: %s\n", e.CreatedAt)
	}

	c.io.Println()
	c.io.Printf("Split between %d participant(s):\n", len(e.SplitBetween))
	for _, p := range e.SplitBetween {
		c.io.Printf("  %s\n", userRefName(p))
	}

	return nil
}

func (c *Cli) runExpenseAdd(ctx context.Context) error {
	c.io.Println("=== Add Expense ===")
	c.io.Println()

	description, err := c.io.ReadInput("Description: ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}
	if err := validation.ValidateDescription(description); err != nil {
		return err
	}

	amountStr, err := c.io.ReadInput("Amount: ")
	if err != nil {
		return fmt.Errorf("failed to read amount: %w", err)
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
	if err != nil {
		return fmt.Errorf("invalid amount: %q", amountStr)
	}
	if err := validation.ValidateAmount(amount); err != nil {
		return err
	}

	groupStr, err := c.io.ReadInput("Group id: ")
	if err != nil {
		return fmt.Errorf("failed to read group id: %w", err)
	}
	groupID, err := parseID(strings.TrimSpace(groupStr), "group")
	if err != nil {
		return err
	}

	splitStr, err := c.io.ReadInput("Split between (user ids, comma-separated): ")
	if err != nil {
		return fmt.Errorf("failed to read participants: %w", err)
	}
	splitBetween, err := parseIDList(splitStr)
	if err != nil {
		return err
	}

	expense, err := c.client.CreateExpense(ctx, api.CreateExpenseRequest{
		Description:  description,
		Amount:       amount,
		GroupID:      groupID,
		SplitBetween: splitBetween,
	})
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Expense created with id %d\n", expense.ID)

	return nil
}

func (c *Cli) runExpenseUpdate(ctx context.Context, id int64) error {
	c.io.Println("=== Update Expense ===")
	c.io.Println("Leave a field empty to keep the current value.")
	c.io.Println()

	description, err := c.io.ReadInput("New description: ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	amountStr, err := c.io.ReadInput("New amount: ")
	if err != nil {
		return fmt.Errorf("failed to read amount: %w", err)
	}

	splitStr, err := c.io.ReadInput("New split (user ids, comma-separated): ")
	if err != nil {
		return fmt.Errorf("failed to read participants: %w", err)
	}

	// Частичное обновление: пустые поля не отправляются
	var req api.UpdateExpenseRequest
	if description = strings.TrimSpace(description); description != "" {
		req.Description = &description
	}
	if amountStr = strings.TrimSpace(amountStr); amountStr != "" {
		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			return fmt.Errorf("invalid amount: %q", amountStr)
		}
		if err := validation.ValidateAmount(amount); err != nil {
			return err
		}
		req.Amount = &amount
	}
	if strings.TrimSpace(splitStr) != "" {
		splitBetween, err := parseIDList(splitStr)
		if err != nil {
			return err
		}
		req.SplitBetween = splitBetween
	}

	if req.Description == nil && req.Amount == nil && req.SplitBetween == nil {
		c.io.Println("Nothing to update.")
		return nil
	}

	expense, err := c.client.UpdateExpense(ctx, id, req)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Expense %d updated\n", expense.ID)

	return nil
}

func (c *Cli) runExpenseDelete(ctx context.Context, id int64) error {
	ok, err := c.io.Confirm(fmt.Sprintf("Delete expense %d?", id))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.client.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	c.io.Printf("✓ Expense %d deleted\n", id)
	return nil
}
