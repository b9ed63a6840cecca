package api

import (
	"context"
	"net/http"

	"github.com/cmu-sei/cite.go/pkg/models"
)

func (c *Client) GetGroups(ctx context.Context) ([]models.Group, error) {
	var out []models.Group
	err := c.do(ctx, http.MethodGet, "/api/groups", nil, &out)
	return out, err
}

func (c *Client) GetGroup(ctx context.Context, id string) (models.Group, error) {
	var out models.Group
	err := c.do(ctx, http.MethodGet, "/api/groups/"+id, nil, &out)
	return out, err
}

func (c *Client) CreateGroup(ctx context.Context, g models.Group) (models.Group, error) {
	var out models.Group
	err := c.do(ctx, http.MethodPost, "/api/groups", g, &out)
	return out, err
}

func (c *Client) UpdateGroup(ctx context.Context, id string, g models.Group) (models.Group, error) {
	var out models.Group
	err := c.do(ctx, http.MethodPut, "/api/groups/"+id, g, &out)
	return out, err
}

func (c *Client) DeleteGroup(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/groups/"+id, nil, nil)
}

// Group memberships

func (c *Client) GetGroupMemberships(ctx context.Context, groupID string) ([]models.GroupMembership, error) {
	var out []models.GroupMembership
	err := c.do(ctx, http.MethodGet, "/api/groups/"+groupID+"/memberships", nil, &out)
	return out, err
}

func (c *Client) CreateGroupMembership(ctx context.Context, groupID string, m models.GroupMembership) (models.GroupMembership, error) {
	var out models.GroupMembership
	err := c.do(ctx, http.MethodPost, "/api/groups/"+groupID+"/memberships", m, &out)
	return out, err
}

func (c *Client) DeleteGroupMembership(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/groupmemberships/"+id, nil, nil)
}
