package api

import (
	"context"
	"net/http"

	"github.com/cmu-sei/cite.go/pkg/models"
)

func (c *Client) GetMySystemPermissions(ctx context.Context) ([]models.SystemPermission, error) {
	var out []models.SystemPermission
	err := c.do(ctx, http.MethodGet, "/api/me/permissions", nil, &out)
	return out, err
}

func (c *Client) GetMyEvaluationPermissions(ctx context.Context) ([]models.EvaluationPermissionClaim, error) {
	var out []models.EvaluationPermissionClaim
	err := c.do(ctx, http.MethodGet, "/api/me/evaluationpermissions", nil, &out)
	return out, err
}

func (c *Client) GetMyScoringModelPermissions(ctx context.Context) ([]models.ScoringModelPermissionClaim, error) {
	var out []models.ScoringModelPermissionClaim
	err := c.do(ctx, http.MethodGet, "/api/me/scoringmodelpermissions", nil, &out)
	return out, err
}

func (c *Client) GetMyTeamPermissions(ctx context.Context) ([]models.TeamPermissionClaim, error) {
	var out []models.TeamPermissionClaim
	err := c.do(ctx, http.MethodGet, "/api/me/teampermissions", nil, &out)
	return out, err
}
