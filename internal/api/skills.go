package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"portfolio-admin/internal/entities"
)

const skillsPath = "/portfolio/skills"

func (c *Client) ListSkills(ctx context.Context) ([]entities.Skill, error) {
	return fetchList[entities.Skill](ctx, c, skillsPath, msgFetchSkills)
}

func (c *Client) CreateSkill(ctx context.Context, in SkillInput) (json.RawMessage, error) {
	payload, err := in.payload()
	if err != nil {
		return nil, err
	}
	return c.mutate(ctx, http.MethodPost, skillsPath, payload, msgCreateSkill)
}

func (c *Client) UpdateSkill(ctx context.Context, id string, in SkillInput) (json.RawMessage, error) {
	payload, err := in.payload()
	if err != nil {
		return nil, err
	}
	return c.mutate(ctx, http.MethodPut, skillsPath+"/"+url.PathEscape(id), payload, msgUpdateSkill)
}

func (c *Client) DeleteSkill(ctx context.Context, id string) (json.RawMessage, error) {
	return c.mutate(ctx, http.MethodDelete, skillsPath+"/"+url.PathEscape(id), nil, msgDeleteSkill)
}
