package api

import (
	"context"
	"fmt"
	"net/url"
)

// ListCustomers fetches every customer record.
func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	var out []Customer
	if err := c.get(ctx, "customers.list", "/customers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCustomer fetches one customer by id.
func (c *Client) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	var out Customer
	if err := c.get(ctx, "customers.get", fmt.Sprintf("/customers/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCustomer creates a customer and returns the stored record.
func (c *Client) CreateCustomer(ctx context.Context, customer *Customer) (*Customer, error) {
	var out Customer
	if err := c.post(ctx, "customers.create", "/customers", customer, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCustomer updates a customer and returns the stored record.
func (c *Client) UpdateCustomer(ctx context.Context, id int64, customer *Customer) (*Customer, error) {
	var out Customer
	if err := c.put(ctx, "customers.update", fmt.Sprintf("/customers/%d", id), customer, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCustomer removes a customer.
func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.delete(ctx, "customers.delete", fmt.Sprintf("/customers/%d", id))
}

// SearchCustomers finds customers by name.
func (c *Client) SearchCustomers(ctx context.Context, name string) ([]Customer, error) {
	q := url.Values{"name": {name}}
	var out []Customer
	if err := c.get(ctx, "customers.search", "/customers/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
