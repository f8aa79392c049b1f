package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/iudanet/splitbill/pkg/api"
)

// ListExpenses возвращает расходы текущего пользователя.
// groupID > 0 ограничивает выборку одной группой; ноль означает
// "без фильтра", параметр group_id в этом случае не отправляется.
func (c *Client) ListExpenses(ctx context.Context, groupID int64) ([]api.Expense, error) {
	var query url.Values
	if groupID > 0 {
		query = url.Values{"group_id": []string{strconv.FormatInt(groupID, 10)}}
	}

	var resp []api.Expense
	err := c.doRequest(ctx, "GET", "/expenses", query, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list expenses request failed: %w", err)
	}
	return resp, nil
}

// GetExpense возвращает расход по id
func (c *Client) GetExpense(ctx context.Context, id int64) (*api.Expense, error) {
	var resp api.Expense
	err := c.doRequest(ctx, "GET", fmt.Sprintf("/expenses/%d", id), nil, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get expense request failed: %w", err)
	}
	return &resp, nil
}

// CreateExpense создает новый расход
func (c *Client) CreateExpense(ctx context.Context, req api.CreateExpenseRequest) (*api.Expense, error) {
	var resp api.Expense
	err := c.doRequest(ctx, "POST", "/expenses", nil, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("create expense request failed: %w", err)
	}
	return &resp, nil
}

// UpdateExpense частично обновляет расход
func (c *Client) UpdateExpense(ctx context.Context, id int64, req api.UpdateExpenseRequest) (*api.Expense, error) {
	var resp api.Expense
	err := c.doRequest(ctx, "PUT", fmt.Sprintf("/expenses/%d", id), nil, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("update expense request failed: %w", err)
	}
	return &resp, nil
}

// DeleteExpense удаляет расход
func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	err := c.doRequest(ctx, "DELETE", fmt.Sprintf("/expenses/%d", id), nil, nil, nil)
	if err != nil {
		return fmt.Errorf("delete expense request failed: %w", err)
	}
	return nil
}
