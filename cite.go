package cite

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/cmu-sei/cite.go/pkg/api"
	"github.com/cmu-sei/cite.go/pkg/data"
	"github.com/cmu-sei/cite.go/pkg/logger"
	"github.com/cmu-sei/cite.go/pkg/settings"
	"github.com/cmu-sei/cite.go/pkg/sync"
	"github.com/cmu-sei/cite.go/pkg/uistate"
)

// Auth supplies the bearer token for both the REST client and the hub
// connection, and signals when the token changes.
type Auth = sync.AuthProvider

// StaticAuth wraps a fixed token.
func StaticAuth(token string) Auth { return sync.StaticAuth(token) }

// Client bundles the data services, the real-time sync service and the
// persisted UI state for one CITE deployment.
type Client struct {
	API *api.Client

	Users         *data.Users
	Teams         *data.Teams
	TeamUsers     *data.TeamUsers
	Evaluations   *data.Evaluations
	Moves         *data.Moves
	Actions       *data.Actions
	Roles         *data.Roles
	ScoringModels *data.ScoringModels
	Submissions   *data.Submissions
	Groups        *data.Groups

	EvaluationMemberships   *data.EvaluationMemberships
	TeamMemberships         *data.TeamMemberships
	ScoringModelMemberships *data.ScoringModelMemberships
	GroupMemberships        *data.GroupMemberships

	Permissions *data.Permissions
	UIState     *uistate.Service

	sync *sync.Service
	log  logger.Logger
}

type Option func(*config)

type config struct {
	log  logger.Logger
	http *http.Client
}

// WithLogger replaces the default stderr logger.
func WithLogger(log logger.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithHTTPClient replaces the REST client's underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *config) { c.http = h }
}

// New builds a Client from settings. It performs no network calls; call
// the services' Load methods and Connect as needed.
func New(s settings.Settings, auth Auth, opts ...Option) (*Client, error) {
	cfg := config{
		log: logger.New(slog.NewTextHandler(os.Stderr, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	apiOpts := []api.Option{}
	if cfg.http != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.http))
	}
	apiClient := api.NewClient(s.APIURL, auth, apiOpts...)

	c := &Client{
		API: apiClient,
		log: cfg.log,

		Users:         data.NewUsers(apiClient, cfg.log),
		Teams:         data.NewTeams(apiClient, cfg.log),
		TeamUsers:     data.NewTeamUsers(apiClient, cfg.log),
		Evaluations:   data.NewEvaluations(apiClient, cfg.log),
		Moves:         data.NewMoves(apiClient, cfg.log),
		Actions:       data.NewActions(apiClient, cfg.log),
		Roles:         data.NewRoles(apiClient, cfg.log),
		ScoringModels: data.NewScoringModels(apiClient, cfg.log),
		Submissions:   data.NewSubmissions(apiClient, cfg.log),
		Groups:        data.NewGroups(apiClient, cfg.log),

		Permissions: data.NewPermissions(apiClient),
	}

	c.EvaluationMemberships = data.NewEvaluationMemberships(apiClient, c.Users.Store(), c.Groups.Store(), cfg.log)
	c.TeamMemberships = data.NewTeamMemberships(apiClient, c.Users.Store(), c.Groups.Store(), cfg.log)
	c.ScoringModelMemberships = data.NewScoringModelMemberships(apiClient, c.Users.Store(), c.Groups.Store(), cfg.log)
	c.GroupMemberships = data.NewGroupMemberships(apiClient, c.Users.Store(), cfg.log)

	storage, err := uistate.NewFileStorage(s.UIStateDir)
	if err != nil {
		return nil, fmt.Errorf("opening ui state storage: %w", err)
	}
	c.UIState = uistate.NewService(storage, cfg.log)

	c.sync = sync.NewService(auth, sync.Stores{
		Actions:       c.Actions,
		Evaluations:   c.Evaluations,
		Moves:         c.Moves,
		Roles:         c.Roles,
		ScoringModels: c.ScoringModels,
		Submissions:   c.Submissions,
		Teams:         c.Teams,
		TeamUsers:     c.TeamUsers,
		Users:         c.Users,
	}, sync.Options{
		HubURL:    s.HubURL,
		Area:      s.Area,
		MaxDelay:  s.MaxReconnectDelay,
		MinJitter: s.MinReconnectJit,
		MaxJitter: s.MaxReconnectJit,
		Logger:    cfg.log,
	})

	return c, nil
}

// Connect opens the hub connection and joins the configured area. Store
// contents start tracking server broadcasts once connected.
func (c *Client) Connect(ctx context.Context) error {
	return c.sync.Start(ctx)
}

// Disconnect leaves the hub area and closes the connection.
func (c *Client) Disconnect(ctx context.Context) error {
	return c.sync.Stop(ctx)
}

// SyncState reports the hub connection state.
func (c *Client) SyncState() sync.State {
	return c.sync.State()
}

// Close releases the membership services' store subscriptions. The hub
// connection, if open, is closed first.
func (c *Client) Close(ctx context.Context) error {
	var err error
	if c.sync.State() != sync.StateDisconnected {
		err = c.sync.Stop(ctx)
	}
	c.EvaluationMemberships.Close()
	c.TeamMemberships.Close()
	c.ScoringModelMemberships.Close()
	c.GroupMemberships.Close()
	return err
}
