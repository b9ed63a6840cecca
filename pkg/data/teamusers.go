package data

import (
	"context"

	"github.com/cmu-sei/cite.go/pkg/api"
	"github.com/cmu-sei/cite.go/pkg/logger"
	"github.com/cmu-sei/cite.go/pkg/models"
	"github.com/cmu-sei/cite.go/pkg/store"
)

// Flag names accepted by SetFlag, matching the per-team ability endpoints.
const (
	TeamUserFlagObserver    = "observer"
	TeamUserFlagIncrementer = "incrementer"
	TeamUserFlagModifier    = "modifier"
	TeamUserFlagSubmitter   = "submitter"
)

// TeamUsers bridges the team-user join records to their store. The store
// holds the records of the most recently loaded team; hub events for other
// teams are upserted too and simply coexist, keyed by record id.
type TeamUsers struct {
	api   *api.Client
	store *store.Store[models.TeamUser]
	log   logger.Logger
}

func NewTeamUsers(c *api.Client, log logger.Logger) *TeamUsers {
	return &TeamUsers{api: c, store: store.New[models.TeamUser](), log: log}
}

func (s *TeamUsers) Store() *store.Store[models.TeamUser] { return s.store }

func (s *TeamUsers) LoadByTeam(ctx context.Context, teamID string) {
	loadList(ctx, s.store, s.log, "teamusers", func(ctx context.Context) ([]models.TeamUser, error) {
		return s.api.GetTeamUsers(ctx, teamID)
	})
}

func (s *TeamUsers) Add(ctx context.Context, teamID, userID string) (models.TeamUser, error) {
	created, err := s.api.CreateTeamUser(ctx, models.TeamUser{TeamID: teamID, UserID: userID})
	if err != nil {
		return models.TeamUser{}, err
	}
	// The hub sometimes delivers the created record before the HTTP
	// response; Upsert absorbs either order.
	s.store.Upsert(created.ID, created)
	return created, nil
}

func (s *TeamUsers) Remove(ctx context.Context, id string) error {
	if err := s.api.DeleteTeamUser(ctx, id); err != nil {
		return err
	}
	s.store.Remove(id)
	return nil
}

func (s *TeamUsers) RemoveByIDs(ctx context.Context, teamID, userID string) error {
	if err := s.api.DeleteTeamUserByIDs(ctx, teamID, userID); err != nil {
		return err
	}
	for _, tu := range s.store.All() {
		if tu.TeamID == teamID && tu.UserID == userID {
			s.store.Remove(tu.ID)
			return nil
		}
	}
	return nil
}

// SetFlag flips one ability flag through its dedicated endpoint and upserts
// the confirmed record.
func (s *TeamUsers) SetFlag(ctx context.Context, id, flag string, value bool) (models.TeamUser, error) {
	updated, err := s.api.SetTeamUserFlag(ctx, id, flag, value)
	if err != nil {
		return models.TeamUser{}, err
	}
	s.store.Upsert(updated.ID, updated)
	return updated, nil
}

func (s *TeamUsers) SetObserver(ctx context.Context, id string, value bool) (models.TeamUser, error) {
	return s.SetFlag(ctx, id, TeamUserFlagObserver, value)
}

func (s *TeamUsers) SetIncrementer(ctx context.Context, id string, value bool) (models.TeamUser, error) {
	return s.SetFlag(ctx, id, TeamUserFlagIncrementer, value)
}

func (s *TeamUsers) SetModifier(ctx context.Context, id string, value bool) (models.TeamUser, error) {
	return s.SetFlag(ctx, id, TeamUserFlagModifier, value)
}

func (s *TeamUsers) SetSubmitter(ctx context.Context, id string, value bool) (models.TeamUser, error) {
	return s.SetFlag(ctx, id, TeamUserFlagSubmitter, value)
}
