package api

import (
	"context"

	"fintrack/internal/logging"
)

// FetchExpenses returns the full remote expense collection in server order.
func (c *Client) FetchExpenses(ctx context.Context) ([]Expense, error) {
	var expenses []Expense
	if err := c.get(ctx, "/expenses", nil, &expenses); err != nil {
		logging.APIError("fetch expenses failed: %v", err)
		return nil, err
	}
	return expenses, nil
}

// FetchExpense returns one expense by id. A missing record surfaces as a
// StatusError, not a nil result; the mock API gives no structured way to
// tell not-found from other failures.
func (c *Client) FetchExpense(ctx context.Context, id string) (Expense, error) {
	var expense Expense
	if err := c.get(ctx, "/expenses/"+id, nil, &expense); err != nil {
		logging.APIError("fetch expense %s failed: %v", id, err)
		return Expense{}, err
	}
	return expense, nil
}

// CreateExpense submits a new expense and returns the server-assigned record.
func (c *Client) CreateExpense(ctx context.Context, payload CreateExpensePayload) (Expense, error) {
	var expense Expense
	if err := c.post(ctx, "/expenses", payload, &expense); err != nil {
		logging.APIError("create expense failed: %v", err)
		return Expense{}, err
	}
	logging.API("created expense %s (%s)", expense.ID, expense.Name)
	return expense, nil
}

// DeleteExpense removes an expense by id.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	if err := c.del(ctx, "/expenses/"+id); err != nil {
		logging.APIError("delete expense %s failed: %v", id, err)
		return err
	}
	logging.API("deleted expense %s", id)
	return nil
}
