package api

import (
	"context"
	"fmt"
	"net/url"
)

// ListLoans fetches every loan.
func (c *Client) ListLoans(ctx context.Context) ([]Loan, error) {
	var out []Loan
	if err := c.get(ctx, "loans.list", "/loans", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLoan fetches one loan by id.
func (c *Client) GetLoan(ctx context.Context, id int64) (*Loan, error) {
	var out Loan
	if err := c.get(ctx, "loans.get", fmt.Sprintf("/loans/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoansByUser fetches the loans belonging to a user.
func (c *Client) LoansByUser(ctx context.Context, userID int64) ([]Loan, error) {
	var out []Loan
	if err := c.get(ctx, "loans.byUser", fmt.Sprintf("/loans/user/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoansByStatus fetches loans in a lifecycle state.
func (c *Client) LoansByStatus(ctx context.Context, status LoanStatus) ([]Loan, error) {
	var out []Loan
	if err := c.get(ctx, "loans.byStatus", "/loans/status/"+string(status), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLoan creates a loan and returns the stored record.
func (c *Client) CreateLoan(ctx context.Context, loan *Loan) (*Loan, error) {
	var out Loan
	if err := c.post(ctx, "loans.create", "/loans", loan, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLoan updates a loan and returns the stored record.
func (c *Client) UpdateLoan(ctx context.Context, id int64, loan *Loan) (*Loan, error) {
	var out Loan
	if err := c.put(ctx, "loans.update", fmt.Sprintf("/loans/%d", id), loan, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteLoan removes a loan.
func (c *Client) DeleteLoan(ctx context.Context, id int64) error {
	return c.delete(ctx, "loans.delete", fmt.Sprintf("/loans/%d", id))
}

// PaymentsByLoan fetches the installments recorded against a loan.
func (c *Client) PaymentsByLoan(ctx context.Context, loanID int64) ([]LoanPayment, error) {
	var out []LoanPayment
	if err := c.get(ctx, "loanPayments.byLoan", fmt.Sprintf("/loan-payments/loan/%d", loanID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PaymentsByUser fetches all installments across a user's loans.
func (c *Client) PaymentsByUser(ctx context.Context, userID int64) ([]LoanPayment, error) {
	var out []LoanPayment
	if err := c.get(ctx, "loanPayments.byUser", fmt.Sprintf("/loan-payments/user/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLoanPayment creates an installment. The payment number is clamped
// into the backend's int32 range first.
func (c *Client) CreateLoanPayment(ctx context.Context, payment *LoanPayment) (*LoanPayment, error) {
	payment.Normalize()
	var out LoanPayment
	if err := c.post(ctx, "loanPayments.create", "/loan-payments", payment, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLoanPayment updates an installment.
func (c *Client) UpdateLoanPayment(ctx context.Context, id int64, payment *LoanPayment) (*LoanPayment, error) {
	payment.Normalize()
	var out LoanPayment
	if err := c.put(ctx, "loanPayments.update", fmt.Sprintf("/loan-payments/%d", id), payment, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteLoanPayment removes an installment.
func (c *Client) DeleteLoanPayment(ctx context.Context, id int64) error {
	return c.delete(ctx, "loanPayments.delete", fmt.Sprintf("/loan-payments/%d", id))
}

// MarkLoanPaymentPaid settles an installment. This endpoint takes query
// parameters, not a body.
func (c *Client) MarkLoanPaymentPaid(ctx context.Context, id int64, paymentDate Date, paymentMethod, transactionReference string) (*LoanPayment, error) {
	q := url.Values{}
	if !paymentDate.IsZero() {
		q.Set("paymentDate", paymentDate.String())
	}
	if paymentMethod != "" {
		q.Set("paymentMethod", paymentMethod)
	}
	if transactionReference != "" {
		q.Set("transactionReference", transactionReference)
	}

	path := fmt.Sprintf("/loan-payments/%d/mark-paid", id)
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out LoanPayment
	if err := c.put(ctx, "loanPayments.markPaid", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
