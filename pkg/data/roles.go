package data

import (
	"context"

	"github.com/cmu-sei/cite.go/pkg/api"
	"github.com/cmu-sei/cite.go/pkg/logger"
	"github.com/cmu-sei/cite.go/pkg/models"
	"github.com/cmu-sei/cite.go/pkg/store"
)

// Roles bridges the system role resource to its store.
type Roles struct {
	api   *api.Client
	store *store.Store[models.SystemRole]
	log   logger.Logger
}

func NewRoles(c *api.Client, log logger.Logger) *Roles {
	return &Roles{api: c, store: store.New[models.SystemRole](), log: log}
}

func (s *Roles) Store() *store.Store[models.SystemRole] { return s.store }

func (s *Roles) Load(ctx context.Context) {
	loadList(ctx, s.store, s.log, "systemroles", s.api.GetSystemRoles)
}

func (s *Roles) Create(ctx context.Context, r models.SystemRole) (models.SystemRole, error) {
	created, err := s.api.CreateSystemRole(ctx, r)
	if err != nil {
		return models.SystemRole{}, err
	}
	s.store.Upsert(created.ID, created)
	return created, nil
}

func (s *Roles) Edit(ctx context.Context, r models.SystemRole) (models.SystemRole, error) {
	updated, err := s.api.UpdateSystemRole(ctx, r.ID, r)
	if err != nil {
		return models.SystemRole{}, err
	}
	s.store.Upsert(r.ID, updated)
	return updated, nil
}

func (s *Roles) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteSystemRole(ctx, id); err != nil {
		return err
	}
	s.store.Remove(id)
	return nil
}
