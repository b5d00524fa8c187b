package api

import (
	"context"
	"fmt"
)

// ListDigitalPrints fetches all digital print jobs.
func (c *Client) ListDigitalPrints(ctx context.Context) ([]DigitalPrint, error) {
	var out []DigitalPrint
	if err := c.get(ctx, "digital.list", "/digital-prints", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDigitalPrint fetches one digital print job.
func (c *Client) GetDigitalPrint(ctx context.Context, id int64) (*DigitalPrint, error) {
	var out DigitalPrint
	if err := c.get(ctx, "digital.get", fmt.Sprintf("/digital-prints/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDigitalPrint creates a digital print job.
func (c *Client) CreateDigitalPrint(ctx context.Context, job *DigitalPrint) (*DigitalPrint, error) {
	var out DigitalPrint
	if err := c.post(ctx, "digital.create", "/digital-prints", job, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDigitalPrint updates a digital print job.
func (c *Client) UpdateDigitalPrint(ctx context.Context, id int64, job *DigitalPrint) (*DigitalPrint, error) {
	var out DigitalPrint
	if err := c.put(ctx, "digital.update", fmt.Sprintf("/digital-prints/%d", id), job, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOffsetPrints fetches all offset print jobs.
func (c *Client) ListOffsetPrints(ctx context.Context) ([]OffsetPrint, error) {
	var out []OffsetPrint
	if err := c.get(ctx, "offset.list", "/offset-prints", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOffsetPrint fetches one offset print job.
func (c *Client) GetOffsetPrint(ctx context.Context, id int64) (*OffsetPrint, error) {
	var out OffsetPrint
	if err := c.get(ctx, "offset.get", fmt.Sprintf("/offset-prints/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOffsetPrint creates an offset print job.
func (c *Client) CreateOffsetPrint(ctx context.Context, job *OffsetPrint) (*OffsetPrint, error) {
	var out OffsetPrint
	if err := c.post(ctx, "offset.create", "/offset-prints", job, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOffsetPrint updates an offset print job.
func (c *Client) UpdateOffsetPrint(ctx context.Context, id int64, job *OffsetPrint) (*OffsetPrint, error) {
	var out OffsetPrint
	if err := c.put(ctx, "offset.update", fmt.Sprintf("/offset-prints/%d", id), job, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDuploPrints fetches all duplo print jobs.
func (c *Client) ListDuploPrints(ctx context.Context) ([]DuploPrint, error) {
	var out []DuploPrint
	if err := c.get(ctx, "duplo.list", "/duplo-prints", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDuploPrint fetches one duplo print job.
func (c *Client) GetDuploPrint(ctx context.Context, id int64) (*DuploPrint, error) {
	var out DuploPrint
	if err := c.get(ctx, "duplo.get", fmt.Sprintf("/duplo-prints/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDuploPrint creates a duplo print job.
func (c *Client) CreateDuploPrint(ctx context.Context, job *DuploPrint) (*DuploPrint, error) {
	var out DuploPrint
	if err := c.post(ctx, "duplo.create", "/duplo-prints", job, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDuploPrint updates a duplo print job.
func (c *Client) UpdateDuploPrint(ctx context.Context, id int64, job *DuploPrint) (*DuploPrint, error) {
	var out DuploPrint
	if err := c.put(ctx, "duplo.update", fmt.Sprintf("/duplo-prints/%d", id), job, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSublimationPrints fetches all sublimation print jobs.
func (c *Client) ListSublimationPrints(ctx context.Context) ([]SublimationPrint, error) {
	var out []SublimationPrint
	if err := c.get(ctx, "sublimation.list", "/sublimation-prints", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSublimationPrint fetches one sublimation print job.
func (c *Client) GetSublimationPrint(ctx context.Context, id int64) (*SublimationPrint, error) {
	var out SublimationPrint
	if err := c.get(ctx, "sublimation.get", fmt.Sprintf("/sublimation-prints/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSublimationPrint creates a sublimation print job.
func (c *Client) CreateSublimationPrint(ctx context.Context, job *SublimationPrint) (*SublimationPrint, error) {
	var out SublimationPrint
	if err := c.post(ctx, "sublimation.create", "/sublimation-prints", job, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSublimationPrint updates a sublimation print job.
func (c *Client) UpdateSublimationPrint(ctx context.Context, id int64, job *SublimationPrint) (*SublimationPrint, error) {
	var out SublimationPrint
	if err := c.put(ctx, "sublimation.update", fmt.Sprintf("/sublimation-prints/%d", id), job, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSublimationPrint removes a sublimation print job.
func (c *Client) DeleteSublimationPrint(ctx context.Context, id int64) error {
	return c.delete(ctx, "sublimation.delete", fmt.Sprintf("/sublimation-prints/%d", id))
}

// SublimationTypes fetches the known sublimation product types.
func (c *Client) SublimationTypes(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.get(ctx, "sublimation.types", "/sublimation-prints/types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CurrentSublimationPrice fetches the active unit price for a sublimation
// type.
func (c *Client) CurrentSublimationPrice(ctx context.Context, sublimationType string) (*SublimationPrice, error) {
	var out SublimationPrice
	if err := c.get(ctx, "sublimation.currentPrice", "/sublimation-prints/current-price/"+sublimationType, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
