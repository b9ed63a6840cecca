package data

import (
	"context"

	"github.com/cmu-sei/cite.go/pkg/api"
	"github.com/cmu-sei/cite.go/pkg/logger"
	"github.com/cmu-sei/cite.go/pkg/models"
	"github.com/cmu-sei/cite.go/pkg/store"
)

// Moves bridges the move resource to its store.
type Moves struct {
	api   *api.Client
	store *store.Store[models.Move]
	log   logger.Logger
}

func NewMoves(c *api.Client, log logger.Logger) *Moves {
	return &Moves{api: c, store: store.New[models.Move](), log: log}
}

func (s *Moves) Store() *store.Store[models.Move] { return s.store }

func (s *Moves) LoadByEvaluation(ctx context.Context, evaluationID string) {
	loadList(ctx, s.store, s.log, "moves", func(ctx context.Context) ([]models.Move, error) {
		return s.api.GetEvaluationMoves(ctx, evaluationID)
	})
}

func (s *Moves) LoadByID(ctx context.Context, id string) error {
	m, err := s.api.GetMove(ctx, id)
	if err != nil {
		return err
	}
	s.store.Upsert(m.ID, m)
	s.store.SetActive(id)
	return nil
}

func (s *Moves) Create(ctx context.Context, m models.Move) (models.Move, error) {
	created, err := s.api.CreateMove(ctx, m)
	if err != nil {
		return models.Move{}, err
	}
	s.store.Upsert(created.ID, created)
	return created, nil
}

func (s *Moves) Edit(ctx context.Context, m models.Move) (models.Move, error) {
	updated, err := s.api.UpdateMove(ctx, m.ID, m)
	if err != nil {
		return models.Move{}, err
	}
	s.store.Upsert(updated.ID, updated)
	return updated, nil
}

func (s *Moves) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteMove(ctx, id); err != nil {
		return err
	}
	s.store.Remove(id)
	return nil
}
