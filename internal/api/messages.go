package api

import (
	"context"

	"portfolio-admin/internal/entities"
)

// ListMessages returns the contact messages. Messages are read-only here.
func (c *Client) ListMessages(ctx context.Context) ([]entities.ContactMessage, error) {
	return fetchList[entities.ContactMessage](ctx, c, "/portfolio/contact", msgFetchMessages)
}
