package api

import (
	"context"
	"fmt"
	"net/url"
)

// ListRecurringExpenses fetches every recurring expense template.
func (c *Client) ListRecurringExpenses(ctx context.Context) ([]RecurringExpense, error) {
	var out []RecurringExpense
	if err := c.get(ctx, "recurring.list", "/recurring-expenses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ActiveRecurringExpenses fetches only the active templates.
func (c *Client) ActiveRecurringExpenses(ctx context.Context) ([]RecurringExpense, error) {
	var out []RecurringExpense
	if err := c.get(ctx, "recurring.active", "/recurring-expenses/active", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRecurringExpense creates a template.
func (c *Client) CreateRecurringExpense(ctx context.Context, expense *RecurringExpense) (*RecurringExpense, error) {
	var out RecurringExpense
	if err := c.post(ctx, "recurring.create", "/recurring-expenses", expense, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRecurringExpense updates a template.
func (c *Client) UpdateRecurringExpense(ctx context.Context, id int64, expense *RecurringExpense) (*RecurringExpense, error) {
	var out RecurringExpense
	if err := c.put(ctx, "recurring.update", fmt.Sprintf("/recurring-expenses/%d", id), expense, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRecurringExpense removes a template. Already-generated monthly
// entries are unaffected.
func (c *Client) DeleteRecurringExpense(ctx context.Context, id int64) error {
	return c.delete(ctx, "recurring.delete", fmt.Sprintf("/recurring-expenses/%d", id))
}

// ToggleRecurringExpenseActive flips a template's active flag.
func (c *Client) ToggleRecurringExpenseActive(ctx context.Context, id int64) (*RecurringExpense, error) {
	var out RecurringExpense
	if err := c.put(ctx, "recurring.toggleActive", fmt.Sprintf("/recurring-expenses/%d/toggle-active", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateMonthlyEntries materializes entries for every active template in
// the given period.
func (c *Client) GenerateMonthlyEntries(ctx context.Context, year, month int) ([]MonthlyExpenseEntry, error) {
	var out []MonthlyExpenseEntry
	if err := c.post(ctx, "recurring.generate", fmt.Sprintf("/recurring-expenses/generate/%d/%d", year, month), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AutoGenerateCurrentMonth materializes entries for the current month from
// templates with auto-generate enabled.
func (c *Client) AutoGenerateCurrentMonth(ctx context.Context) ([]MonthlyExpenseEntry, error) {
	var out []MonthlyExpenseEntry
	if err := c.post(ctx, "recurring.autoGenerate", "/recurring-expenses/auto-generate", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MonthlyEntriesForMonth fetches the materialized entries of one period.
func (c *Client) MonthlyEntriesForMonth(ctx context.Context, year, month int) ([]MonthlyExpenseEntry, error) {
	var out []MonthlyExpenseEntry
	if err := c.get(ctx, "monthlyEntries.forMonth", fmt.Sprintf("/monthly-expense-entries/month/%d/%d", year, month), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkEntryPaid marks a monthly entry paid. The payment date travels as a
// query parameter, not a body; a zero date lets the backend default to
// today.
func (c *Client) MarkEntryPaid(ctx context.Context, id int64, paymentDate Date) (*MonthlyExpenseEntry, error) {
	path := fmt.Sprintf("/monthly-expense-entries/%d/mark-paid", id)
	if !paymentDate.IsZero() {
		q := url.Values{"paymentDate": {paymentDate.String()}}
		path += "?" + q.Encode()
	}
	var out MonthlyExpenseEntry
	if err := c.put(ctx, "monthlyEntries.markPaid", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkEntryUnpaid reverts a monthly entry to unpaid.
func (c *Client) MarkEntryUnpaid(ctx context.Context, id int64) (*MonthlyExpenseEntry, error) {
	var out MonthlyExpenseEntry
	if err := c.put(ctx, "monthlyEntries.markUnpaid", fmt.Sprintf("/monthly-expense-entries/%d/mark-unpaid", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TotalForMonth fetches the backend's aggregated total for one period.
func (c *Client) TotalForMonth(ctx context.Context, year, month int) (float64, error) {
	var out float64
	if err := c.get(ctx, "monthlyEntries.total", fmt.Sprintf("/monthly-expense-entries/total/%d/%d", year, month), nil, &out); err != nil {
		return 0, err
	}
	return out, nil
}
