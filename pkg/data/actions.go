package data

import (
	"context"

	"github.com/cmu-sei/cite.go/pkg/api"
	"github.com/cmu-sei/cite.go/pkg/logger"
	"github.com/cmu-sei/cite.go/pkg/models"
	"github.com/cmu-sei/cite.go/pkg/store"
)

// Actions bridges the per-team action checklist to its store.
type Actions struct {
	api   *api.Client
	store *store.Store[models.Action]
	log   logger.Logger
}

func NewActions(c *api.Client, log logger.Logger) *Actions {
	return &Actions{api: c, store: store.New[models.Action](), log: log}
}

func (s *Actions) Store() *store.Store[models.Action] { return s.store }

func (s *Actions) LoadByTeam(ctx context.Context, evaluationID, teamID string) {
	loadList(ctx, s.store, s.log, "actions", func(ctx context.Context) ([]models.Action, error) {
		return s.api.GetTeamActions(ctx, evaluationID, teamID)
	})
}

func (s *Actions) Create(ctx context.Context, a models.Action) (models.Action, error) {
	created, err := s.api.CreateAction(ctx, a)
	if err != nil {
		return models.Action{}, err
	}
	s.store.Upsert(created.ID, created)
	return created, nil
}

func (s *Actions) Edit(ctx context.Context, a models.Action) (models.Action, error) {
	updated, err := s.api.UpdateAction(ctx, a.ID, a)
	if err != nil {
		return models.Action{}, err
	}
	s.store.Upsert(updated.ID, updated)
	return updated, nil
}

func (s *Actions) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteAction(ctx, id); err != nil {
		return err
	}
	s.store.Remove(id)
	return nil
}

// SetChecked marks or clears one checklist item.
func (s *Actions) SetChecked(ctx context.Context, id string, checked bool) (models.Action, error) {
	var (
		updated models.Action
		err     error
	)
	if checked {
		updated, err = s.api.CheckAction(ctx, id)
	} else {
		updated, err = s.api.UncheckAction(ctx, id)
	}
	if err != nil {
		return models.Action{}, err
	}
	s.store.Upsert(updated.ID, updated)
	return updated, nil
}
