package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cmu-sei/cite.go/pkg/models"
)

func (c *Client) GetTeams(ctx context.Context) ([]models.Team, error) {
	var out []models.Team
	err := c.do(ctx, http.MethodGet, "/api/teams", nil, &out)
	return out, err
}

func (c *Client) GetTeam(ctx context.Context, id string) (models.Team, error) {
	var out models.Team
	err := c.do(ctx, http.MethodGet, "/api/teams/"+id, nil, &out)
	return out, err
}

func (c *Client) GetEvaluationTeams(ctx context.Context, evaluationID string) ([]models.Team, error) {
	var out []models.Team
	err := c.do(ctx, http.MethodGet, "/api/evaluations/"+evaluationID+"/teams", nil, &out)
	return out, err
}

func (c *Client) GetUserTeams(ctx context.Context, userID string) ([]models.Team, error) {
	var out []models.Team
	err := c.do(ctx, http.MethodGet, "/api/users/"+userID+"/teams", nil, &out)
	return out, err
}

func (c *Client) CreateTeam(ctx context.Context, team models.Team) (models.Team, error) {
	var out models.Team
	err := c.do(ctx, http.MethodPost, "/api/teams", team, &out)
	return out, err
}

func (c *Client) UpdateTeam(ctx context.Context, id string, team models.Team) (models.Team, error) {
	var out models.Team
	err := c.do(ctx, http.MethodPut, "/api/teams/"+id, team, &out)
	return out, err
}

func (c *Client) DeleteTeam(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/teams/"+id, nil, nil)
}

func (c *Client) GetTeamTypes(ctx context.Context) ([]models.TeamType, error) {
	var out []models.TeamType
	err := c.do(ctx, http.MethodGet, "/api/teamtypes", nil, &out)
	return out, err
}

// Team users

func (c *Client) GetTeamUsers(ctx context.Context, teamID string) ([]models.TeamUser, error) {
	var out []models.TeamUser
	err := c.do(ctx, http.MethodGet, "/api/teams/"+teamID+"/teamusers", nil, &out)
	return out, err
}

func (c *Client) CreateTeamUser(ctx context.Context, teamUser models.TeamUser) (models.TeamUser, error) {
	var out models.TeamUser
	err := c.do(ctx, http.MethodPost, "/api/teamusers", teamUser, &out)
	return out, err
}

func (c *Client) DeleteTeamUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/teamusers/"+id, nil, nil)
}

func (c *Client) DeleteTeamUserByIDs(ctx context.Context, teamID, userID string) error {
	return c.do(ctx, http.MethodDelete, "/api/teams/"+teamID+"/users/"+userID, nil, nil)
}

// SetTeamUserFlag flips one of the per-team ability flags (observer,
// incrementer, modifier, submitter) and returns the confirmed record.
func (c *Client) SetTeamUserFlag(ctx context.Context, id, flag string, value bool) (models.TeamUser, error) {
	var out models.TeamUser
	path := fmt.Sprintf("/api/teamusers/%s/%s/%t", id, flag, value)
	err := c.do(ctx, http.MethodPut, path, nil, &out)
	return out, err
}

// Team memberships

func (c *Client) GetTeamMemberships(ctx context.Context, teamID string) ([]models.TeamMembership, error) {
	var out []models.TeamMembership
	err := c.do(ctx, http.MethodGet, "/api/teams/"+teamID+"/memberships", nil, &out)
	return out, err
}

func (c *Client) CreateTeamMembership(ctx context.Context, teamID string, m models.TeamMembership) (models.TeamMembership, error) {
	var out models.TeamMembership
	err := c.do(ctx, http.MethodPost, "/api/teams/"+teamID+"/memberships", m, &out)
	return out, err
}

func (c *Client) UpdateTeamMembership(ctx context.Context, id string, m models.TeamMembership) (models.TeamMembership, error) {
	var out models.TeamMembership
	err := c.do(ctx, http.MethodPut, "/api/teammemberships/"+id, m, &out)
	return out, err
}

func (c *Client) DeleteTeamMembership(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/teammemberships/"+id, nil, nil)
}
