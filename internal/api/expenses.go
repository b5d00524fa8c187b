package api

import (
	"context"
	"fmt"
	"net/url"
)

// ListExpenses fetches every standalone expense.
func (c *Client) ListExpenses(ctx context.Context) ([]Expense, error) {
	var out []Expense
	if err := c.get(ctx, "expenses.list", "/expenses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetExpense fetches one expense by id.
func (c *Client) GetExpense(ctx context.Context, id int64) (*Expense, error) {
	var out Expense
	if err := c.get(ctx, "expenses.get", fmt.Sprintf("/expenses/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateExpense creates an expense and returns the stored record.
func (c *Client) CreateExpense(ctx context.Context, expense *Expense) (*Expense, error) {
	var out Expense
	if err := c.post(ctx, "expenses.create", "/expenses", expense, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateExpense updates an expense and returns the stored record.
func (c *Client) UpdateExpense(ctx context.Context, id int64, expense *Expense) (*Expense, error) {
	var out Expense
	if err := c.put(ctx, "expenses.update", fmt.Sprintf("/expenses/%d", id), expense, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteExpense removes an expense.
func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	return c.delete(ctx, "expenses.delete", fmt.Sprintf("/expenses/%d", id))
}

// SearchExpenses queries expenses with the given filters; zero-valued
// filters are omitted.
func (c *Client) SearchExpenses(ctx context.Context, search ExpenseSearch) ([]Expense, error) {
	q := url.Values{}
	if search.Description != "" {
		q.Set("description", search.Description)
	}
	if search.ExpenseType != "" {
		q.Set("expenseType", search.ExpenseType)
	}
	if search.PaymentStatus != "" {
		q.Set("paymentStatus", string(search.PaymentStatus))
	}
	if !search.StartDate.IsZero() {
		q.Set("startDate", search.StartDate.String())
	}
	if !search.EndDate.IsZero() {
		q.Set("endDate", search.EndDate.String())
	}

	var out []Expense
	if err := c.get(ctx, "expenses.search", "/expenses/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExpensesByStatus fetches expenses in a settlement state.
func (c *Client) ExpensesByStatus(ctx context.Context, status PaymentStatus) ([]Expense, error) {
	var out []Expense
	if err := c.get(ctx, "expenses.byStatus", "/expenses/status/"+string(status), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExpensesBySupplier fetches expenses recorded against a supplier.
func (c *Client) ExpensesBySupplier(ctx context.Context, supplierID int64) ([]Expense, error) {
	var out []Expense
	if err := c.get(ctx, "expenses.bySupplier", fmt.Sprintf("/expenses/supplier/%d", supplierID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
