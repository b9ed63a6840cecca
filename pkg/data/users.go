package data

import (
	"context"

	"github.com/cmu-sei/cite.go/pkg/api"
	"github.com/cmu-sei/cite.go/pkg/logger"
	"github.com/cmu-sei/cite.go/pkg/models"
	"github.com/cmu-sei/cite.go/pkg/store"
)

// Users bridges the user resource to its store.
type Users struct {
	api   *api.Client
	store *store.Store[models.User]
	log   logger.Logger
}

func NewUsers(c *api.Client, log logger.Logger) *Users {
	return &Users{api: c, store: store.New[models.User](), log: log}
}

func (s *Users) Store() *store.Store[models.User] { return s.store }

func (s *Users) Load(ctx context.Context) {
	loadList(ctx, s.store, s.log, "users", s.api.GetUsers)
}

func (s *Users) LoadByID(ctx context.Context, id string) error {
	u, err := s.api.GetUser(ctx, id)
	if err != nil {
		return err
	}
	s.store.Upsert(u.ID, u)
	s.store.SetActive(id)
	return nil
}

func (s *Users) Create(ctx context.Context, u models.User) (models.User, error) {
	created, err := s.api.CreateUser(ctx, u)
	if err != nil {
		return models.User{}, err
	}
	s.store.Upsert(created.ID, created)
	return created, nil
}

func (s *Users) Edit(ctx context.Context, u models.User) (models.User, error) {
	updated, err := s.api.UpdateUser(ctx, u.ID, u)
	if err != nil {
		return models.User{}, err
	}
	s.store.Upsert(updated.ID, updated)
	return updated, nil
}

func (s *Users) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.store.Remove(id)
	return nil
}
