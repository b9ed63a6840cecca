package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmu-sei/cite.go/pkg/models"
)

func newFixture(t *testing.T) (*Client, *chi.Mux) {
	t.Helper()
	r := chi.NewRouter()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, StaticToken("fixture-token")), r
}

func TestGetUsersSendsBearerToken(t *testing.T) {
	c, r := newFixture(t)

	var gotAuth string
	r.Get("/api/users", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]models.User{
			{Base: models.Base{ID: "u1"}, Name: "Avery"},
		})
	})

	users, err := c.GetUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Avery", users[0].Name)
	assert.Equal(t, "Bearer fixture-token", gotAuth)
}

func TestCreateTeamRoundTripsBody(t *testing.T) {
	c, r := newFixture(t)

	r.Post("/api/teams", func(w http.ResponseWriter, req *http.Request) {
		var in models.Team
		require.NoError(t, json.NewDecoder(req.Body).Decode(&in))
		in.ID = "t1" // server assigns the id
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	})

	team, err := c.CreateTeam(context.Background(), models.Team{Name: "Blue Cell"})
	require.NoError(t, err)
	assert.Equal(t, "t1", team.ID)
	assert.Equal(t, "Blue Cell", team.Name)
}

func TestNonSuccessStatusMapsToError(t *testing.T) {
	c, r := newFixture(t)

	r.Get("/api/evaluations/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"title":  "Not Found",
			"status": 404,
			"detail": "no such evaluation",
		})
	})

	_, err := c.GetEvaluation(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Not Found", apiErr.Title)
	assert.Equal(t, "no such evaluation", apiErr.Detail)
}

func TestDeleteSendsNoBodyAndAcceptsNoContent(t *testing.T) {
	c, r := newFixture(t)

	r.Delete("/api/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "u2", chi.URLParam(req, "id"))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteUser(context.Background(), "u2"))
}

func TestSetTeamUserFlagPath(t *testing.T) {
	c, r := newFixture(t)

	r.Put("/api/teamusers/{id}/observer/{value}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "true", chi.URLParam(req, "value"))
		_ = json.NewEncoder(w).Encode(models.TeamUser{
			Base: models.Base{ID: chi.URLParam(req, "id")}, IsObserver: true,
		})
	})

	tu, err := c.SetTeamUserFlag(context.Background(), "tu1", "observer", true)
	require.NoError(t, err)
	assert.True(t, tu.IsObserver)
}
