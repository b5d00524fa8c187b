package api

import (
	"context"
	"net/url"
	"strconv"
)

// AuditLogs fetches one page of audit records matching the query. Empty
// filters are omitted so the backend treats them as unset.
func (c *Client) AuditLogs(ctx context.Context, query AuditLogQuery) (*AuditLogPage, error) {
	q := url.Values{
		"page": {strconv.Itoa(query.Page)},
		"size": {strconv.Itoa(query.Size)},
	}
	if query.EntityType != "" {
		q.Set("entityType", query.EntityType)
	}
	if query.UserID != 0 {
		q.Set("userId", strconv.FormatInt(query.UserID, 10))
	}
	if query.Action != "" {
		q.Set("action", query.Action)
	}
	if !query.StartDate.IsZero() {
		q.Set("startDate", query.StartDate.String())
	}
	if !query.EndDate.IsZero() {
		q.Set("endDate", query.EndDate.String())
	}

	var out AuditLogPage
	if err := c.get(ctx, "auditLogs.list", "/audit-logs", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
