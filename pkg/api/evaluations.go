package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cmu-sei/cite.go/pkg/models"
)

func (c *Client) GetEvaluations(ctx context.Context) ([]models.Evaluation, error) {
	var out []models.Evaluation
	err := c.do(ctx, http.MethodGet, "/api/evaluations", nil, &out)
	return out, err
}

// GetMyEvaluations lists only the evaluations the caller participates in.
func (c *Client) GetMyEvaluations(ctx context.Context) ([]models.Evaluation, error) {
	var out []models.Evaluation
	err := c.do(ctx, http.MethodGet, "/api/evaluations/mine", nil, &out)
	return out, err
}

func (c *Client) GetEvaluation(ctx context.Context, id string) (models.Evaluation, error) {
	var out models.Evaluation
	err := c.do(ctx, http.MethodGet, "/api/evaluations/"+id, nil, &out)
	return out, err
}

func (c *Client) CreateEvaluation(ctx context.Context, e models.Evaluation) (models.Evaluation, error) {
	var out models.Evaluation
	err := c.do(ctx, http.MethodPost, "/api/evaluations", e, &out)
	return out, err
}

func (c *Client) UpdateEvaluation(ctx context.Context, id string, e models.Evaluation) (models.Evaluation, error) {
	var out models.Evaluation
	err := c.do(ctx, http.MethodPut, "/api/evaluations/"+id, e, &out)
	return out, err
}

func (c *Client) DeleteEvaluation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/evaluations/"+id, nil, nil)
}

// SetEvaluationCurrentMove advances or rewinds the evaluation's current
// move and returns the confirmed record.
func (c *Client) SetEvaluationCurrentMove(ctx context.Context, id string, moveNumber int) (models.Evaluation, error) {
	var out models.Evaluation
	path := fmt.Sprintf("/api/evaluations/%s/currentmove/%d", id, moveNumber)
	err := c.do(ctx, http.MethodPut, path, nil, &out)
	return out, err
}

// Evaluation memberships

func (c *Client) GetEvaluationMemberships(ctx context.Context, evaluationID string) ([]models.EvaluationMembership, error) {
	var out []models.EvaluationMembership
	err := c.do(ctx, http.MethodGet, "/api/evaluations/"+evaluationID+"/memberships", nil, &out)
	return out, err
}

func (c *Client) CreateEvaluationMembership(ctx context.Context, evaluationID string, m models.EvaluationMembership) (models.EvaluationMembership, error) {
	var out models.EvaluationMembership
	err := c.do(ctx, http.MethodPost, "/api/evaluations/"+evaluationID+"/memberships", m, &out)
	return out, err
}

func (c *Client) UpdateEvaluationMembership(ctx context.Context, id string, m models.EvaluationMembership) (models.EvaluationMembership, error) {
	var out models.EvaluationMembership
	err := c.do(ctx, http.MethodPut, "/api/evaluationmemberships/"+id, m, &out)
	return out, err
}

func (c *Client) DeleteEvaluationMembership(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/evaluationmemberships/"+id, nil, nil)
}
