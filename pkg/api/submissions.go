package api

import (
	"context"
	"net/http"

	"github.com/cmu-sei/cite.go/pkg/models"
)

func (c *Client) GetEvaluationSubmissions(ctx context.Context, evaluationID string) ([]models.Submission, error) {
	var out []models.Submission
	err := c.do(ctx, http.MethodGet, "/api/evaluations/"+evaluationID+"/submissions", nil, &out)
	return out, err
}

func (c *Client) GetSubmission(ctx context.Context, id string) (models.Submission, error) {
	var out models.Submission
	err := c.do(ctx, http.MethodGet, "/api/submissions/"+id, nil, &out)
	return out, err
}

func (c *Client) CreateSubmission(ctx context.Context, s models.Submission) (models.Submission, error) {
	var out models.Submission
	err := c.do(ctx, http.MethodPost, "/api/submissions", s, &out)
	return out, err
}

func (c *Client) UpdateSubmission(ctx context.Context, id string, s models.Submission) (models.Submission, error) {
	var out models.Submission
	err := c.do(ctx, http.MethodPut, "/api/submissions/"+id, s, &out)
	return out, err
}

func (c *Client) DeleteSubmission(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/submissions/"+id, nil, nil)
}
