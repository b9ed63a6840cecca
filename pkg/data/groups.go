package data

import (
	"context"

	"github.com/cmu-sei/cite.go/pkg/api"
	"github.com/cmu-sei/cite.go/pkg/logger"
	"github.com/cmu-sei/cite.go/pkg/models"
	"github.com/cmu-sei/cite.go/pkg/store"
	"github.com/cmu-sei/cite.go/pkg/stream"
)

// Groups bridges the group resource to its store.
type Groups struct {
	api   *api.Client
	store *store.Store[models.Group]
	log   logger.Logger
}

func NewGroups(c *api.Client, log logger.Logger) *Groups {
	return &Groups{api: c, store: store.New[models.Group](), log: log}
}

func (s *Groups) Store() *store.Store[models.Group] { return s.store }

func (s *Groups) Load(ctx context.Context) {
	loadList(ctx, s.store, s.log, "groups", s.api.GetGroups)
}

func (s *Groups) LoadByID(ctx context.Context, id string) error {
	g, err := s.api.GetGroup(ctx, id)
	if err != nil {
		return err
	}
	s.store.Upsert(g.ID, g)
	s.store.SetActive(id)
	return nil
}

func (s *Groups) Create(ctx context.Context, g models.Group) (models.Group, error) {
	created, err := s.api.CreateGroup(ctx, g)
	if err != nil {
		return models.Group{}, err
	}
	s.store.Upsert(created.ID, created)
	return created, nil
}

func (s *Groups) Edit(ctx context.Context, g models.Group) (models.Group, error) {
	updated, err := s.api.UpdateGroup(ctx, g.ID, g)
	if err != nil {
		return models.Group{}, err
	}
	s.store.Upsert(updated.ID, updated)
	return updated, nil
}

func (s *Groups) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteGroup(ctx, id); err != nil {
		return err
	}
	s.store.Remove(id)
	return nil
}

// GroupMemberships manages the users of one group at a time. The principal
// here is always a user, so only user partitions are derived.
type GroupMemberships struct {
	api   *api.Client
	store *store.Store[models.GroupMembership]
	log   logger.Logger

	memberUsers    *stream.Subject[[]models.User]
	nonMemberUsers *stream.Subject[[]models.User]
	subs           []*stream.Subscription
}

func NewGroupMemberships(c *api.Client, users *store.Store[models.User], log logger.Logger) *GroupMemberships {
	s := &GroupMemberships{
		api:            c,
		store:          store.New[models.GroupMembership](),
		log:            log,
		memberUsers:    stream.NewSubject[[]models.User](nil),
		nonMemberUsers: stream.NewSubject[[]models.User](nil),
	}

	split, sub := stream.CombineLatest2(users.Items(), s.store.Items(),
		func(us []models.User, ms []models.GroupMembership) userSplit {
			idx := make(map[string]bool, len(ms))
			for _, m := range ms {
				idx[m.UserID] = true
			}
			members, nonMembers := Partition(us, idx)
			return userSplit{members: members, nonMembers: nonMembers}
		})
	s.subs = append(s.subs, sub, split.Subscribe(func(sp userSplit) {
		s.memberUsers.Next(sp.members)
		s.nonMemberUsers.Next(sp.nonMembers)
	}))

	return s
}

func (s *GroupMemberships) Store() *store.Store[models.GroupMembership] { return s.store }

func (s *GroupMemberships) MemberUsers() *stream.Subject[[]models.User]    { return s.memberUsers }
func (s *GroupMemberships) NonMemberUsers() *stream.Subject[[]models.User] { return s.nonMemberUsers }

func (s *GroupMemberships) Close() {
	for _, sub := range s.subs {
		sub.Unsubscribe()
	}
}

func (s *GroupMemberships) LoadMemberships(ctx context.Context, groupID string) {
	loadList(ctx, s.store, s.log, "groupmemberships", func(ctx context.Context) ([]models.GroupMembership, error) {
		return s.api.GetGroupMemberships(ctx, groupID)
	})
}

func (s *GroupMemberships) Create(ctx context.Context, groupID string, m models.GroupMembership) (models.GroupMembership, error) {
	if err := m.Validate(); err != nil {
		return models.GroupMembership{}, err
	}
	created, err := s.api.CreateGroupMembership(ctx, groupID, m)
	if err != nil {
		return models.GroupMembership{}, err
	}
	s.store.Upsert(created.ID, created)
	return created, nil
}

func (s *GroupMemberships) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteGroupMembership(ctx, id); err != nil {
		return err
	}
	s.store.Remove(id)
	return nil
}
