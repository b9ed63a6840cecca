package api

import (
	"context"
	"net/http"

	"github.com/cmu-sei/cite.go/pkg/models"
)

// GetTeamActions lists the actions for one team within one evaluation.
func (c *Client) GetTeamActions(ctx context.Context, evaluationID, teamID string) ([]models.Action, error) {
	var out []models.Action
	err := c.do(ctx, http.MethodGet, "/api/evaluations/"+evaluationID+"/teams/"+teamID+"/actions", nil, &out)
	return out, err
}

func (c *Client) CreateAction(ctx context.Context, a models.Action) (models.Action, error) {
	var out models.Action
	err := c.do(ctx, http.MethodPost, "/api/actions", a, &out)
	return out, err
}

func (c *Client) UpdateAction(ctx context.Context, id string, a models.Action) (models.Action, error) {
	var out models.Action
	err := c.do(ctx, http.MethodPut, "/api/actions/"+id, a, &out)
	return out, err
}

func (c *Client) DeleteAction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/actions/"+id, nil, nil)
}

// CheckAction marks an action done; UncheckAction reverts it. Both return
// the confirmed record.
func (c *Client) CheckAction(ctx context.Context, id string) (models.Action, error) {
	var out models.Action
	err := c.do(ctx, http.MethodPut, "/api/actions/"+id+"/check", nil, &out)
	return out, err
}

func (c *Client) UncheckAction(ctx context.Context, id string) (models.Action, error) {
	var out models.Action
	err := c.do(ctx, http.MethodPut, "/api/actions/"+id+"/uncheck", nil, &out)
	return out, err
}
