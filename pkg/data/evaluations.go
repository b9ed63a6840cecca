package data

import (
	"context"

	"github.com/cmu-sei/cite.go/pkg/api"
	"github.com/cmu-sei/cite.go/pkg/logger"
	"github.com/cmu-sei/cite.go/pkg/models"
	"github.com/cmu-sei/cite.go/pkg/store"
)

// Evaluations bridges the evaluation resource to its store.
type Evaluations struct {
	api   *api.Client
	store *store.Store[models.Evaluation]
	log   logger.Logger
}

func NewEvaluations(c *api.Client, log logger.Logger) *Evaluations {
	return &Evaluations{api: c, store: store.New[models.Evaluation](), log: log}
}

func (s *Evaluations) Store() *store.Store[models.Evaluation] { return s.store }

func (s *Evaluations) Load(ctx context.Context) {
	loadList(ctx, s.store, s.log, "evaluations", s.api.GetEvaluations)
}

// LoadMine replaces the collection with only the evaluations the caller
// participates in.
func (s *Evaluations) LoadMine(ctx context.Context) {
	loadList(ctx, s.store, s.log, "evaluations", s.api.GetMyEvaluations)
}

func (s *Evaluations) LoadByID(ctx context.Context, id string) error {
	e, err := s.api.GetEvaluation(ctx, id)
	if err != nil {
		return err
	}
	s.store.Upsert(e.ID, e)
	s.store.SetActive(id)
	return nil
}

func (s *Evaluations) Create(ctx context.Context, e models.Evaluation) (models.Evaluation, error) {
	created, err := s.api.CreateEvaluation(ctx, e)
	if err != nil {
		return models.Evaluation{}, err
	}
	s.store.Upsert(created.ID, created)
	return created, nil
}

func (s *Evaluations) Edit(ctx context.Context, e models.Evaluation) (models.Evaluation, error) {
	updated, err := s.api.UpdateEvaluation(ctx, e.ID, e)
	if err != nil {
		return models.Evaluation{}, err
	}
	s.store.Upsert(updated.ID, updated)
	return updated, nil
}

func (s *Evaluations) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteEvaluation(ctx, id); err != nil {
		return err
	}
	s.store.Remove(id)
	return nil
}

// SetCurrentMove moves the evaluation to the given move number.
func (s *Evaluations) SetCurrentMove(ctx context.Context, id string, moveNumber int) (models.Evaluation, error) {
	updated, err := s.api.SetEvaluationCurrentMove(ctx, id, moveNumber)
	if err != nil {
		return models.Evaluation{}, err
	}
	s.store.Upsert(updated.ID, updated)
	return updated, nil
}
