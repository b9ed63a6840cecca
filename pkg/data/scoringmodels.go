package data

import (
	"context"

	"github.com/cmu-sei/cite.go/pkg/api"
	"github.com/cmu-sei/cite.go/pkg/logger"
	"github.com/cmu-sei/cite.go/pkg/models"
	"github.com/cmu-sei/cite.go/pkg/store"
)

// ScoringModels bridges the scoring model resource to its store. Categories
// and options travel nested inside their model.
type ScoringModels struct {
	api   *api.Client
	store *store.Store[models.ScoringModel]
	log   logger.Logger
}

func NewScoringModels(c *api.Client, log logger.Logger) *ScoringModels {
	return &ScoringModels{api: c, store: store.New[models.ScoringModel](), log: log}
}

func (s *ScoringModels) Store() *store.Store[models.ScoringModel] { return s.store }

func (s *ScoringModels) Load(ctx context.Context) {
	loadList(ctx, s.store, s.log, "scoringmodels", s.api.GetScoringModels)
}

func (s *ScoringModels) LoadByID(ctx context.Context, id string) error {
	m, err := s.api.GetScoringModel(ctx, id)
	if err != nil {
		return err
	}
	s.store.Upsert(m.ID, m)
	s.store.SetActive(id)
	return nil
}

func (s *ScoringModels) Create(ctx context.Context, m models.ScoringModel) (models.ScoringModel, error) {
	created, err := s.api.CreateScoringModel(ctx, m)
	if err != nil {
		return models.ScoringModel{}, err
	}
	s.store.Upsert(created.ID, created)
	return created, nil
}

func (s *ScoringModels) Edit(ctx context.Context, m models.ScoringModel) (models.ScoringModel, error) {
	updated, err := s.api.UpdateScoringModel(ctx, m.ID, m)
	if err != nil {
		return models.ScoringModel{}, err
	}
	s.store.Upsert(updated.ID, updated)
	return updated, nil
}

func (s *ScoringModels) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteScoringModel(ctx, id); err != nil {
		return err
	}
	s.store.Remove(id)
	return nil
}
