package api

import (
	"context"
	"net/http"

	"github.com/cmu-sei/cite.go/pkg/models"
)

func (c *Client) GetScoringModels(ctx context.Context) ([]models.ScoringModel, error) {
	var out []models.ScoringModel
	err := c.do(ctx, http.MethodGet, "/api/scoringmodels", nil, &out)
	return out, err
}

func (c *Client) GetScoringModel(ctx context.Context, id string) (models.ScoringModel, error) {
	var out models.ScoringModel
	err := c.do(ctx, http.MethodGet, "/api/scoringmodels/"+id, nil, &out)
	return out, err
}

func (c *Client) CreateScoringModel(ctx context.Context, m models.ScoringModel) (models.ScoringModel, error) {
	var out models.ScoringModel
	err := c.do(ctx, http.MethodPost, "/api/scoringmodels", m, &out)
	return out, err
}

func (c *Client) UpdateScoringModel(ctx context.Context, id string, m models.ScoringModel) (models.ScoringModel, error) {
	var out models.ScoringModel
	err := c.do(ctx, http.MethodPut, "/api/scoringmodels/"+id, m, &out)
	return out, err
}

func (c *Client) DeleteScoringModel(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/scoringmodels/"+id, nil, nil)
}

// Scoring model memberships

func (c *Client) GetScoringModelMemberships(ctx context.Context, scoringModelID string) ([]models.ScoringModelMembership, error) {
	var out []models.ScoringModelMembership
	err := c.do(ctx, http.MethodGet, "/api/scoringmodels/"+scoringModelID+"/memberships", nil, &out)
	return out, err
}

func (c *Client) CreateScoringModelMembership(ctx context.Context, scoringModelID string, m models.ScoringModelMembership) (models.ScoringModelMembership, error) {
	var out models.ScoringModelMembership
	err := c.do(ctx, http.MethodPost, "/api/scoringmodels/"+scoringModelID+"/memberships", m, &out)
	return out, err
}

func (c *Client) UpdateScoringModelMembership(ctx context.Context, id string, m models.ScoringModelMembership) (models.ScoringModelMembership, error) {
	var out models.ScoringModelMembership
	err := c.do(ctx, http.MethodPut, "/api/scoringmodelmemberships/"+id, m, &out)
	return out, err
}

func (c *Client) DeleteScoringModelMembership(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/scoringmodelmemberships/"+id, nil, nil)
}
