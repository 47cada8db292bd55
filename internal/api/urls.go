package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"portfolio-admin/internal/entities"
	"portfolio-admin/internal/models"
)

const (
	urlsPath = "/url"

	// DefaultURLPageSize is used when a caller asks for a non-positive limit
	DefaultURLPageSize = 10
)

// ListURLs returns one page of shortened URLs. Whatever shape the backend
// answers with, the result carries a list and a fully populated envelope.
func (c *Client) ListURLs(ctx context.Context, page, limit int) (entities.URLPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultURLPageSize
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	resp, err := c.Do(ctx, http.MethodGet, urlsPath+"?"+query.Encode(), nil)
	if err != nil {
		return entities.URLPage{}, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return entities.URLPage{}, &StatusError{Message: msgFetchURLs, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.URLPage{}, fmt.Errorf("failed to read URL list: %w", err)
	}
	return normalizeURLPage(body, page), nil
}

// CreateURL shortens fullURL
func (c *Client) CreateURL(ctx context.Context, fullURL string) (json.RawMessage, error) {
	payload, err := NewJSONPayload(models.CreateURLRequest{FullURL: fullURL})
	if err != nil {
		return nil, err
	}
	return c.mutate(ctx, http.MethodPost, urlsPath, payload, msgCreateURL)
}

// UpdateURL changes the target and short code of the link with the given id
func (c *Client) UpdateURL(ctx context.Context, id, fullURL, shortCode string) (json.RawMessage, error) {
	payload, err := NewJSONPayload(models.UpdateURLRequest{FullURL: fullURL, ShortCode: shortCode})
	if err != nil {
		return nil, err
	}
	return c.mutate(ctx, http.MethodPut, urlsPath+"/"+url.PathEscape(id), payload, msgUpdateURL)
}

// DeleteURL removes the link with the given id
func (c *Client) DeleteURL(ctx context.Context, id string) (json.RawMessage, error) {
	return c.mutate(ctx, http.MethodDelete, urlsPath+"/"+url.PathEscape(id), nil, msgDeleteURL)
}
