// Package sync keeps the entity stores consistent with every other
// connected client. It holds one persistent connection to the CITE hub,
// joins the caller's application area, and forwards each named entity
// event into the same store mutation the data services use for local HTTP
// responses, so both paths converge on one state shape.
//
// A dropped connection is never surfaced as an application error: the
// service reconnects forever with capped exponential backoff plus jitter,
// re-sending the join message after every successful reconnect. When the
// auth token changes, the connection is torn down and rebuilt with the
// fresh token.
package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	gosync "sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/cmu-sei/cite.go/pkg/data"
	"github.com/cmu-sei/cite.go/pkg/logger"
)

// Application areas, matching the hub's Join/Leave method suffixes.
const (
	AreaHome  = ""
	AreaAdmin = "Admin"
)

const (
	defaultMaxDelay  = 60 * time.Second
	defaultMaxJitter = 5 * time.Second
)

// AuthProvider supplies the bearer token for the hub handshake and signals
// when it changes (re-authentication).
type AuthProvider interface {
	Token() string
	Changes() <-chan struct{}
}

// StaticAuth is an AuthProvider for a token that never changes.
type StaticAuth string

func (a StaticAuth) Token() string            { return string(a) }
func (a StaticAuth) Changes() <-chan struct{} { return nil }

// Stores names the data services the hub events feed. Any nil entry simply
// drops that entity's events.
type Stores struct {
	Actions       *data.Actions
	Evaluations   *data.Evaluations
	Moves         *data.Moves
	Roles         *data.Roles
	ScoringModels *data.ScoringModels
	Submissions   *data.Submissions
	Teams         *data.Teams
	TeamUsers     *data.TeamUsers
	Users         *data.Users
}

type Options struct {
	// HubURL is the base hub endpoint, e.g. wss://cite.example.com.
	HubURL string
	// Area scopes the join: AreaHome or AreaAdmin.
	Area string

	// Reconnect tuning. Zero values take the defaults (60s cap, 0-5s
	// jitter).
	MaxDelay  time.Duration
	MinJitter time.Duration
	MaxJitter time.Duration

	Dialer *websocket.Dialer
	Logger logger.Logger
}

// envelope is one hub frame. Client invocations carry Method; server
// broadcasts carry Event and Payload.
type envelope struct {
	ID      string          `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Event   string          `json:"event,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Service owns one hub connection and its reconnect loop.
type Service struct {
	auth   AuthProvider
	stores Stores
	opts   Options
	log    logger.Logger

	mu      gosync.Mutex
	conn    *websocket.Conn
	state   State
	closeCh chan struct{}
	doneCh  chan struct{}
}

func NewService(auth AuthProvider, stores Stores, opts Options) *Service {
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = defaultMaxDelay
	}
	if opts.MaxJitter <= 0 {
		opts.MaxJitter = defaultMaxJitter
	}
	if opts.Dialer == nil {
		opts.Dialer = websocket.DefaultDialer
	}
	if opts.Logger == nil {
		opts.Logger = logger.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		auth:   auth,
		stores: stores,
		opts:   opts,
		log:    opts.Logger,
		state:  StateDisconnected,
	}
}

// State returns the current connection state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Service) transitionTo(newState State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.state.TransitionTo(newState)
	if err != nil {
		return err
	}
	s.state = next
	s.log.Debug("hub connection state changed", "state", next.String())
	return nil
}

func (s *Service) mustTransitionTo(newState State) {
	if err := s.transitionTo(newState); err != nil {
		panic(fmt.Sprintf("BUG: %v", err))
	}
}

// Start dials the hub, joins, and launches the read/reconnect loop. The
// initial dial error is returned to the caller: a first connect usually
// fails for reasons reconnecting cannot fix, like a bad URL or token, and
// the caller decides what to do about that.
func (s *Service) Start(ctx context.Context) error {
	if err := s.transitionTo(StateConnecting); err != nil {
		return err
	}

	if err := s.dialAndJoin(ctx); err != nil {
		s.mustTransitionTo(StateDisconnected)
		return fmt.Errorf("connecting to hub: %w", err)
	}

	s.mu.Lock()
	s.closeCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	s.mu.Unlock()

	s.mustTransitionTo(StateConnected)

	go s.run()
	go s.watchAuth()

	return nil
}

// Stop sends the leave message, closes the connection and waits for the
// loop to exit. Call it only at teardown; a stopped service is not
// restartable.
func (s *Service) Stop(ctx context.Context) error {
	if err := s.transitionTo(StateDisconnecting); err != nil {
		return fmt.Errorf("hub connection already closing or closed: %w", err)
	}
	defer s.mustTransitionTo(StateDisconnected)

	s.mu.Lock()
	close(s.closeCh)
	conn := s.conn
	s.mu.Unlock()

	if conn != nil {
		// Best effort: the server drops our group registration anyway
		// when the socket goes.
		_ = s.invoke(conn, "Leave"+s.opts.Area)
		_ = conn.Close()
	}

	select {
	case <-s.doneCh:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (s *Service) closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.closeCh:
		return true
	default:
		return false
	}
}

// dialAndJoin establishes a fresh connection with the current token and
// re-sends the join message. Join is idempotent on the server side.
func (s *Service) dialAndJoin(ctx context.Context) error {
	url := fmt.Sprintf("%s/hubs/main?bearer=%s", s.opts.HubURL, s.auth.Token())
	conn, resp, err := s.opts.Dialer.DialContext(ctx, url, nil)
	if err != nil {
		return err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	if err := s.invoke(conn, "Join"+s.opts.Area); err != nil {
		_ = conn.Close()
		return fmt.Errorf("sending join: %w", err)
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	return nil
}

func (s *Service) invoke(conn *websocket.Conn, method string) error {
	return conn.WriteJSON(envelope{ID: uuid.NewString(), Method: method})
}

func (s *Service) currentConn() *websocket.Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn
}

// run consumes hub frames until the connection drops, then reconnects with
// capped backoff, indefinitely, until Stop.
func (s *Service) run() {
	defer close(s.doneCh)

	for {
		_, frame, err := s.currentConn().ReadMessage()
		if err != nil {
			if s.closed() {
				return
			}
			s.log.Warn("hub connection lost", "error", err)
			// A concurrent Stop may have moved us to Disconnecting
			// between the read error and here; bail out if so.
			if err := s.transitionTo(StateReconnecting); err != nil {
				return
			}
			if !s.reconnect() {
				return
			}
			if err := s.transitionTo(StateConnected); err != nil {
				if conn := s.currentConn(); conn != nil {
					_ = conn.Close()
				}
				return
			}
			continue
		}
		s.dispatch(frame)
	}
}

// reconnect retries until it succeeds or the service is stopped. Returns
// false only when stopped.
func (s *Service) reconnect() bool {
	for attempt := 0; ; attempt++ {
		delay := RetryDelay(attempt, s.opts.MaxDelay, s.opts.MinJitter, s.opts.MaxJitter)
		s.log.Info("reconnecting to hub", "attempt", attempt+1, "delay", delay.String())

		s.mu.Lock()
		closeCh := s.closeCh
		s.mu.Unlock()
		select {
		case <-closeCh:
			return false
		case <-time.After(delay):
		}

		if err := s.dialAndJoin(context.Background()); err != nil {
			s.log.Error("hub reconnect failed", "error", err)
			continue
		}
		s.log.Info("hub reconnected")
		return true
	}
}

// watchAuth rebuilds the connection whenever the auth token changes. The
// fresh token is picked up by dialAndJoin on the reconnect path.
func (s *Service) watchAuth() {
	changes := s.auth.Changes()
	if changes == nil {
		return
	}
	for {
		s.mu.Lock()
		closeCh := s.closeCh
		s.mu.Unlock()
		select {
		case <-closeCh:
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			s.log.Info("auth token changed, rebuilding hub connection")
			if conn := s.currentConn(); conn != nil {
				_ = conn.Close()
			}
		}
	}
}
