package api

import (
	"context"
	"net/http"

	"github.com/cmu-sei/cite.go/pkg/models"
)

func (c *Client) GetUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := c.do(ctx, http.MethodGet, "/api/users", nil, &out)
	return out, err
}

func (c *Client) GetUser(ctx context.Context, id string) (models.User, error) {
	var out models.User
	err := c.do(ctx, http.MethodGet, "/api/users/"+id, nil, &out)
	return out, err
}

func (c *Client) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var out models.User
	err := c.do(ctx, http.MethodPost, "/api/users", user, &out)
	return out, err
}

func (c *Client) UpdateUser(ctx context.Context, id string, user models.User) (models.User, error) {
	var out models.User
	err := c.do(ctx, http.MethodPut, "/api/users/"+id, user, &out)
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+id, nil, nil)
}
