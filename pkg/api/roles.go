package api

import (
	"context"
	"net/http"

	"github.com/cmu-sei/cite.go/pkg/models"
)

func (c *Client) GetSystemRoles(ctx context.Context) ([]models.SystemRole, error) {
	var out []models.SystemRole
	err := c.do(ctx, http.MethodGet, "/api/systemroles", nil, &out)
	return out, err
}

func (c *Client) CreateSystemRole(ctx context.Context, r models.SystemRole) (models.SystemRole, error) {
	var out models.SystemRole
	err := c.do(ctx, http.MethodPost, "/api/systemroles", r, &out)
	return out, err
}

func (c *Client) UpdateSystemRole(ctx context.Context, id string, r models.SystemRole) (models.SystemRole, error) {
	var out models.SystemRole
	err := c.do(ctx, http.MethodPut, "/api/systemroles/"+id, r, &out)
	return out, err
}

func (c *Client) DeleteSystemRole(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/systemroles/"+id, nil, nil)
}
