package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"portfolio-admin/internal/entities"
)

const projectsPath = "/portfolio/projects"

// ListProjects returns every project
func (c *Client) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return fetchList[entities.Project](ctx, c, projectsPath, msgFetchProjects)
}

// CreateProject submits a new project
func (c *Client) CreateProject(ctx context.Context, in ProjectInput) (json.RawMessage, error) {
	payload, err := in.payload()
	if err != nil {
		return nil, err
	}
	return c.mutate(ctx, http.MethodPost, projectsPath, payload, msgCreateProject)
}

// UpdateProject replaces the project with the given id
func (c *Client) UpdateProject(ctx context.Context, id string, in ProjectInput) (json.RawMessage, error) {
	payload, err := in.payload()
	if err != nil {
		return nil, err
	}
	return c.mutate(ctx, http.MethodPut, projectsPath+"/"+url.PathEscape(id), payload, msgUpdateProject)
}

// DeleteProject removes the project with the given id
func (c *Client) DeleteProject(ctx context.Context, id string) (json.RawMessage, error) {
	return c.mutate(ctx, http.MethodDelete, projectsPath+"/"+url.PathEscape(id), nil, msgDeleteProject)
}
