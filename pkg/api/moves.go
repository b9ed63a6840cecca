package api

import (
	"context"
	"net/http"

	"github.com/cmu-sei/cite.go/pkg/models"
)

func (c *Client) GetEvaluationMoves(ctx context.Context, evaluationID string) ([]models.Move, error) {
	var out []models.Move
	err := c.do(ctx, http.MethodGet, "/api/evaluations/"+evaluationID+"/moves", nil, &out)
	return out, err
}

func (c *Client) GetMove(ctx context.Context, id string) (models.Move, error) {
	var out models.Move
	err := c.do(ctx, http.MethodGet, "/api/moves/"+id, nil, &out)
	return out, err
}

func (c *Client) CreateMove(ctx context.Context, m models.Move) (models.Move, error) {
	var out models.Move
	err := c.do(ctx, http.MethodPost, "/api/moves", m, &out)
	return out, err
}

func (c *Client) UpdateMove(ctx context.Context, id string, m models.Move) (models.Move, error) {
	var out models.Move
	err := c.do(ctx, http.MethodPut, "/api/moves/"+id, m, &out)
	return out, err
}

func (c *Client) DeleteMove(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/moves/"+id, nil, nil)
}
