package data

import (
	"context"

	"github.com/cmu-sei/cite.go/pkg/api"
	"github.com/cmu-sei/cite.go/pkg/logger"
	"github.com/cmu-sei/cite.go/pkg/models"
	"github.com/cmu-sei/cite.go/pkg/store"
	"github.com/cmu-sei/cite.go/pkg/stream"
)

// Teams bridges the team resource to its store. Team types ride along as a
// plain subject; they are reference data, not an entity collection of
// their own.
type Teams struct {
	api       *api.Client
	store     *store.Store[models.Team]
	teamTypes *stream.Subject[[]models.TeamType]
	log       logger.Logger
}

func NewTeams(c *api.Client, log logger.Logger) *Teams {
	return &Teams{
		api:       c,
		store:     store.New[models.Team](),
		teamTypes: stream.NewSubject[[]models.TeamType](nil),
		log:       log,
	}
}

func (s *Teams) Store() *store.Store[models.Team] { return s.store }

func (s *Teams) TeamTypes() *stream.Subject[[]models.TeamType] { return s.teamTypes }

func (s *Teams) Load(ctx context.Context) {
	loadList(ctx, s.store, s.log, "teams", s.api.GetTeams)
}

func (s *Teams) LoadByEvaluation(ctx context.Context, evaluationID string) {
	loadList(ctx, s.store, s.log, "teams", func(ctx context.Context) ([]models.Team, error) {
		return s.api.GetEvaluationTeams(ctx, evaluationID)
	})
}

func (s *Teams) LoadByUser(ctx context.Context, userID string) {
	loadList(ctx, s.store, s.log, "teams", func(ctx context.Context) ([]models.Team, error) {
		return s.api.GetUserTeams(ctx, userID)
	})
}

func (s *Teams) LoadByID(ctx context.Context, id string) error {
	t, err := s.api.GetTeam(ctx, id)
	if err != nil {
		return err
	}
	s.store.Upsert(t.ID, t)
	s.store.SetActive(id)
	return nil
}

func (s *Teams) LoadTeamTypes(ctx context.Context) error {
	types, err := s.api.GetTeamTypes(ctx)
	if err != nil {
		return err
	}
	s.teamTypes.Next(types)
	return nil
}

func (s *Teams) Create(ctx context.Context, t models.Team) (models.Team, error) {
	created, err := s.api.CreateTeam(ctx, t)
	if err != nil {
		return models.Team{}, err
	}
	s.store.Upsert(created.ID, created)
	return created, nil
}

func (s *Teams) Edit(ctx context.Context, t models.Team) (models.Team, error) {
	updated, err := s.api.UpdateTeam(ctx, t.ID, t)
	if err != nil {
		return models.Team{}, err
	}
	s.store.Upsert(updated.ID, updated)
	return updated, nil
}

func (s *Teams) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteTeam(ctx, id); err != nil {
		return err
	}
	s.store.Remove(id)
	return nil
}
