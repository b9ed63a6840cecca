// citewatch signs in to a CITE deployment with a bearer token, loads the
// shared collections and tails hub broadcasts to the console.
//
// Configuration comes from CITE_* environment variables or a config file:
//
//	CITE_API_URL=https://cite.example.com CITE_TOKEN=... citewatch
//	citewatch -config cite.yaml -token ...
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	cite "github.com/cmu-sei/cite.go"
	"github.com/cmu-sei/cite.go/pkg/logger"
	"github.com/cmu-sei/cite.go/pkg/models"
	"github.com/cmu-sei/cite.go/pkg/settings"
	"github.com/cmu-sei/cite.go/pkg/store"
	"github.com/cmu-sei/cite.go/pkg/stream"
	"github.com/cmu-sei/cite.go/pkg/tableview"
)

func main() {
	configFile := flag.String("config", "", "optional config file; CITE_* env vars win")
	token := flag.String("token", os.Getenv("CITE_TOKEN"), "bearer token")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *verbose {
		zl = zl.Level(zerolog.DebugLevel)
	} else {
		zl = zl.Level(zerolog.InfoLevel)
	}

	if err := run(*configFile, *token, zl); err != nil {
		zl.Fatal().Err(err).Msg("citewatch failed")
	}
}

func run(configFile, token string, zl zerolog.Logger) error {
	if token == "" {
		return fmt.Errorf("a bearer token is required (-token or CITE_TOKEN)")
	}

	s, err := settings.Load(configFile)
	if err != nil {
		return err
	}

	session := uuid.NewString()
	zl.Info().Str("session", session).Str("api", s.APIURL).Str("hub", s.HubURL).Msg("starting")

	c, err := cite.New(s, cite.StaticAuth(token), cite.WithLogger(zerologAdapter{zl}))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c.Users.Load(ctx)
	c.Teams.Load(ctx)
	c.Evaluations.LoadMine(ctx)
	if err := c.Permissions.Load(ctx); err != nil {
		zl.Warn().Err(err).Msg("could not load permissions")
	}

	// Evaluations get a sorted, paged view like the UI shows them.
	evalView, evalViewSub := tableview.View(
		c.Evaluations.Store().Items(),
		stream.NewSubject(tableview.Sort{Column: "description", Direction: tableview.Asc}),
		stream.NewSubject(tableview.Page{Index: 0, Size: 20}),
		tableview.Columns[models.Evaluation]{
			"description": func(e models.Evaluation) *string { return &e.Description },
		},
		nil,
	)
	defer evalViewSub.Unsubscribe()

	subs := []*stream.Subscription{
		watch(zl, "users", c.Users.Store()),
		watch(zl, "teams", c.Teams.Store()),
		evalView.Subscribe(func(rows []models.Evaluation) {
			for i, e := range rows {
				zl.Info().Int("row", i).Str("id", e.ID).Str("description", e.Description).Msg("evaluation")
			}
		}),
		watch(zl, "moves", c.Moves.Store()),
		watch(zl, "submissions", c.Submissions.Store()),
		watch(zl, "scoring models", c.ScoringModels.Store()),
		watch(zl, "actions", c.Actions.Store()),
	}
	defer func() {
		for _, sub := range subs {
			sub.Unsubscribe()
		}
	}()

	if err := c.Connect(ctx); err != nil {
		return fmt.Errorf("connecting to hub: %w", err)
	}
	zl.Info().Msg("connected; watching for changes (ctrl-c to stop)")

	<-ctx.Done()
	zl.Info().Msg("shutting down")
	return c.Close(context.Background())
}

// watch logs every emission of a store's item stream.
func watch[T store.Entity](zl zerolog.Logger, name string, st *store.Store[T]) *stream.Subscription {
	return st.Items().Subscribe(func(items []T) {
		zl.Info().Str("collection", name).Int("count", len(items)).Msg("changed")
		for _, item := range items {
			zl.Debug().Str("collection", name).Str("id", item.GetID()).Msg("item")
		}
	})
}

// zerologAdapter lets the client's structured logging flow through the
// CLI's console writer.
type zerologAdapter struct {
	zl zerolog.Logger
}

var _ logger.Logger = zerologAdapter{}

func (a zerologAdapter) Error(msg string, args ...any) { a.emit(a.zl.Error(), msg, args) }
func (a zerologAdapter) Warn(msg string, args ...any)  { a.emit(a.zl.Warn(), msg, args) }
func (a zerologAdapter) Info(msg string, args ...any)  { a.emit(a.zl.Info(), msg, args) }
func (a zerologAdapter) Debug(msg string, args ...any) { a.emit(a.zl.Debug(), msg, args) }

func (a zerologAdapter) emit(ev *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		ev = ev.Interface(key, args[i+1])
	}
	ev.Msg(msg)
}
