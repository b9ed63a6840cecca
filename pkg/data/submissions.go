package data

import (
	"context"

	"github.com/cmu-sei/cite.go/pkg/api"
	"github.com/cmu-sei/cite.go/pkg/logger"
	"github.com/cmu-sei/cite.go/pkg/models"
	"github.com/cmu-sei/cite.go/pkg/store"
)

// Submissions bridges the score submissions of one evaluation to their
// store.
type Submissions struct {
	api   *api.Client
	store *store.Store[models.Submission]
	log   logger.Logger
}

func NewSubmissions(c *api.Client, log logger.Logger) *Submissions {
	return &Submissions{api: c, store: store.New[models.Submission](), log: log}
}

func (s *Submissions) Store() *store.Store[models.Submission] { return s.store }

func (s *Submissions) LoadByEvaluation(ctx context.Context, evaluationID string) {
	loadList(ctx, s.store, s.log, "submissions", func(ctx context.Context) ([]models.Submission, error) {
		return s.api.GetEvaluationSubmissions(ctx, evaluationID)
	})
}

func (s *Submissions) LoadByID(ctx context.Context, id string) error {
	sub, err := s.api.GetSubmission(ctx, id)
	if err != nil {
		return err
	}
	s.store.Upsert(sub.ID, sub)
	return nil
}

func (s *Submissions) Create(ctx context.Context, sub models.Submission) (models.Submission, error) {
	created, err := s.api.CreateSubmission(ctx, sub)
	if err != nil {
		return models.Submission{}, err
	}
	s.store.Upsert(created.ID, created)
	return created, nil
}

func (s *Submissions) Edit(ctx context.Context, sub models.Submission) (models.Submission, error) {
	updated, err := s.api.UpdateSubmission(ctx, sub.ID, sub)
	if err != nil {
		return models.Submission{}, err
	}
	s.store.Upsert(updated.ID, updated)
	return updated, nil
}

func (s *Submissions) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteSubmission(ctx, id); err != nil {
		return err
	}
	s.store.Remove(id)
	return nil
}
