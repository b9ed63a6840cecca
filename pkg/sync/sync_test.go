package sync

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	gosync "sync"
	"testing"
	"time"

	rawslog "log/slog"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmu-sei/cite.go/pkg/api"
	"github.com/cmu-sei/cite.go/pkg/data"
	"github.com/cmu-sei/cite.go/pkg/logger"
	"github.com/cmu-sei/cite.go/pkg/models"
)

func testLogger() logger.Logger {
	return logger.New(rawslog.NewTextHandler(io.Discard, nil))
}

// hubFixture is a minimal hub: it records bearer tokens and join
// invocations per connection and lets tests push broadcast frames.
type hubFixture struct {
	srv      *httptest.Server
	upgrader websocket.Upgrader

	conns   chan *websocket.Conn
	joins   chan string
	bearers chan string
}

func newHubFixture(t *testing.T) *hubFixture {
	t.Helper()
	f := &hubFixture{
		conns:   make(chan *websocket.Conn, 8),
		joins:   make(chan string, 8),
		bearers: make(chan string, 8),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/hubs/main", func(w http.ResponseWriter, r *http.Request) {
		conn, err := f.upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		f.bearers <- r.URL.Query().Get("bearer")
		f.conns <- conn
		go func() {
			for {
				var env envelope
				if err := conn.ReadJSON(&env); err != nil {
					return
				}
				if strings.HasPrefix(env.Method, "Join") {
					f.joins <- env.Method
				}
			}
		}()
	})

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *hubFixture) url() string {
	return "ws" + strings.TrimPrefix(f.srv.URL, "http")
}

func (f *hubFixture) accept(t *testing.T) *websocket.Conn {
	t.Helper()
	select {
	case conn := <-f.conns:
		return conn
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a hub connection")
		return nil
	}
}

func (f *hubFixture) expectJoin(t *testing.T, method string) {
	t.Helper()
	select {
	case got := <-f.joins:
		require.Equal(t, method, got)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", method)
	}
}

func push(t *testing.T, conn *websocket.Conn, event string, payload any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(envelope{Event: event, Payload: raw}))
}

func newStores() Stores {
	c := api.NewClient("http://unused.invalid", api.StaticToken(""))
	log := testLogger()
	return Stores{
		Evaluations: data.NewEvaluations(c, log),
		TeamUsers:   data.NewTeamUsers(c, log),
		Users:       data.NewUsers(c, log),
	}
}

func fastOptions(url string) Options {
	return Options{
		HubURL:    url,
		Area:      AreaAdmin,
		MaxDelay:  50 * time.Millisecond,
		MaxJitter: time.Millisecond,
		Logger:    testLogger(),
	}
}

func TestOptionsDefaultsApplyIndependently(t *testing.T) {
	svc := NewService(StaticAuth(""), Stores{}, Options{MaxDelay: time.Second})
	assert.Equal(t, time.Second, svc.opts.MaxDelay)
	assert.Equal(t, defaultMaxJitter, svc.opts.MaxJitter)

	svc = NewService(StaticAuth(""), Stores{}, Options{MaxJitter: time.Millisecond})
	assert.Equal(t, defaultMaxDelay, svc.opts.MaxDelay)
	assert.Equal(t, time.Millisecond, svc.opts.MaxJitter)
}

func TestStateTransitions(t *testing.T) {
	valid := []struct{ from, to State }{
		{StateDisconnected, StateConnecting},
		{StateConnecting, StateConnected},
		{StateConnecting, StateDisconnected},
		{StateConnected, StateReconnecting},
		{StateConnected, StateDisconnecting},
		{StateReconnecting, StateConnected},
		{StateReconnecting, StateDisconnecting},
		{StateDisconnecting, StateDisconnected},
	}
	for _, tt := range valid {
		got, err := tt.from.TransitionTo(tt.to)
		require.NoError(t, err, "%v -> %v", tt.from, tt.to)
		assert.Equal(t, tt.to, got)
	}

	invalid := []struct{ from, to State }{
		{StateDisconnected, StateConnected},
		{StateConnected, StateConnecting},
		{StateDisconnecting, StateConnecting},
		{StateReconnecting, StateConnecting},
	}
	for _, tt := range invalid {
		_, err := tt.from.TransitionTo(tt.to)
		assert.Error(t, err, "%v -> %v", tt.from, tt.to)
	}
}

func TestRetryDelayIsMonotonicAndCapped(t *testing.T) {
	const ceiling = 60 * time.Second

	var prev time.Duration
	for attempt := 0; attempt < 40; attempt++ {
		d := RetryDelay(attempt, ceiling, 0, 0)
		assert.GreaterOrEqual(t, d, prev, "attempt %d", attempt)
		assert.LessOrEqual(t, d, ceiling, "attempt %d", attempt)
		prev = d
	}

	assert.Equal(t, 2*time.Second, RetryDelay(0, ceiling, 0, 0))
	assert.Equal(t, 4*time.Second, RetryDelay(1, ceiling, 0, 0))
	assert.Equal(t, ceiling, RetryDelay(10, ceiling, 0, 0))
}

func TestRetryDelayJitterStaysInRange(t *testing.T) {
	const base = 2 * time.Second
	for i := 0; i < 100; i++ {
		d := RetryDelay(0, time.Minute, time.Second, 3*time.Second)
		assert.GreaterOrEqual(t, d, base+time.Second)
		assert.LessOrEqual(t, d, base+3*time.Second)
	}
}

func TestServiceJoinsAndDispatchesEvents(t *testing.T) {
	f := newHubFixture(t)
	stores := newStores()

	svc := NewService(StaticAuth("token-1"), stores, fastOptions(f.url()))
	require.NoError(t, svc.Start(context.Background()))
	defer svc.Stop(context.Background())

	f.expectJoin(t, "JoinAdmin")
	conn := f.accept(t)
	require.Equal(t, StateConnected, svc.State())

	push(t, conn, "UserCreated", models.User{Base: models.Base{ID: "u1"}, Name: "Avery"})
	require.Eventually(t, func() bool {
		_, ok := stores.Users.Store().Get("u1")
		return ok
	}, 5*time.Second, 10*time.Millisecond)

	push(t, conn, "UserUpdated", models.User{Base: models.Base{ID: "u1"}, Name: "Avery R"})
	require.Eventually(t, func() bool {
		u, _ := stores.Users.Store().Get("u1")
		return u.Name == "Avery R"
	}, 5*time.Second, 10*time.Millisecond)

	push(t, conn, "UserDeleted", "u1")
	require.Eventually(t, func() bool {
		_, ok := stores.Users.Store().Get("u1")
		return !ok
	}, 5*time.Second, 10*time.Millisecond)
}

func TestTeamUserDeletedCarriesWholeRecord(t *testing.T) {
	f := newHubFixture(t)
	stores := newStores()
	stores.TeamUsers.Store().Set([]models.TeamUser{
		{Base: models.Base{ID: "tu1"}, TeamID: "t1", UserID: "u1"},
	})

	svc := NewService(StaticAuth("token-1"), stores, fastOptions(f.url()))
	require.NoError(t, svc.Start(context.Background()))
	defer svc.Stop(context.Background())

	conn := f.accept(t)
	push(t, conn, "TeamUserDeleted", models.TeamUser{
		Base: models.Base{ID: "tu1"}, TeamID: "t1", UserID: "u1",
	})

	require.Eventually(t, func() bool {
		return len(stores.TeamUsers.Store().All()) == 0
	}, 5*time.Second, 10*time.Millisecond)
}

func TestServiceRejoinsAfterConnectionDrop(t *testing.T) {
	f := newHubFixture(t)
	stores := newStores()

	svc := NewService(StaticAuth("token-1"), stores, fastOptions(f.url()))
	require.NoError(t, svc.Start(context.Background()))
	defer svc.Stop(context.Background())

	f.expectJoin(t, "JoinAdmin")
	first := f.accept(t)

	// Server-side drop; the service must come back and re-join.
	first.Close()
	f.expectJoin(t, "JoinAdmin")
	second := f.accept(t)

	push(t, second, "EvaluationCreated", models.Evaluation{Base: models.Base{ID: "e1"}})
	require.Eventually(t, func() bool {
		_, ok := stores.Evaluations.Store().Get("e1")
		return ok
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, StateConnected, svc.State())
}

type switchableAuth struct {
	mu      gosync.Mutex
	token   string
	changes chan struct{}
}

func (a *switchableAuth) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token
}

func (a *switchableAuth) Changes() <-chan struct{} { return a.changes }

func (a *switchableAuth) set(token string) {
	a.mu.Lock()
	a.token = token
	a.mu.Unlock()
	a.changes <- struct{}{}
}

func TestTokenChangeRebuildsConnection(t *testing.T) {
	f := newHubFixture(t)
	stores := newStores()
	auth := &switchableAuth{token: "first", changes: make(chan struct{}, 1)}

	svc := NewService(auth, stores, fastOptions(f.url()))
	require.NoError(t, svc.Start(context.Background()))
	defer svc.Stop(context.Background())

	require.Equal(t, "first", <-f.bearers)
	f.accept(t)

	auth.set("second")

	select {
	case bearer := <-f.bearers:
		assert.Equal(t, "second", bearer, "rebuilt connection must carry the fresh token")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for rebuilt connection")
	}
	f.expectJoin(t, "JoinAdmin") // initial join
	f.expectJoin(t, "JoinAdmin") // re-join on the rebuilt connection
}
