package data

import (
	"context"

	"github.com/cmu-sei/cite.go/pkg/logger"
	"github.com/cmu-sei/cite.go/pkg/models"
	"github.com/cmu-sei/cite.go/pkg/store"
	"github.com/cmu-sei/cite.go/pkg/stream"
)

// membershipAPI is the slice of the REST client one membership service
// needs, injected as functions so each parent resource (evaluation, team,
// scoring model) can bind its own endpoints.
type membershipAPI[M store.Entity] struct {
	list   func(ctx context.Context, parentID string) ([]M, error)
	create func(ctx context.Context, parentID string, m M) (M, error)
	update func(ctx context.Context, id string, m M) (M, error)
	delete func(ctx context.Context, id string) error
}

// memberships is the shared core of every membership service: a store of
// join records plus user/group partitions derived from the principal
// stores. Partitions recompute whenever the principals or the memberships
// change.
type memberships[M store.Entity] struct {
	api      membershipAPI[M]
	store    *store.Store[M]
	validate func(M) error
	userID   func(M) string
	groupID  func(M) string
	log      logger.Logger

	memberUsers     *stream.Subject[[]models.User]
	nonMemberUsers  *stream.Subject[[]models.User]
	memberGroups    *stream.Subject[[]models.Group]
	nonMemberGroups *stream.Subject[[]models.Group]

	subs []*stream.Subscription
}

type userSplit struct {
	members, nonMembers []models.User
}

type groupSplit struct {
	members, nonMembers []models.Group
}

func newMemberships[M store.Entity](
	api membershipAPI[M],
	users *store.Store[models.User],
	groups *store.Store[models.Group],
	validate func(M) error,
	userID, groupID func(M) string,
	log logger.Logger,
) *memberships[M] {
	s := &memberships[M]{
		api:             api,
		store:           store.New[M](),
		validate:        validate,
		userID:          userID,
		groupID:         groupID,
		log:             log,
		memberUsers:     stream.NewSubject[[]models.User](nil),
		nonMemberUsers:  stream.NewSubject[[]models.User](nil),
		memberGroups:    stream.NewSubject[[]models.Group](nil),
		nonMemberGroups: stream.NewSubject[[]models.Group](nil),
	}

	splitUsers, subU := stream.CombineLatest2(users.Items(), s.store.Items(),
		func(us []models.User, ms []M) userSplit {
			members, nonMembers := Partition(us, s.userIndex(ms))
			return userSplit{members: members, nonMembers: nonMembers}
		})
	s.subs = append(s.subs, subU, splitUsers.Subscribe(func(sp userSplit) {
		s.memberUsers.Next(sp.members)
		s.nonMemberUsers.Next(sp.nonMembers)
	}))

	splitGroups, subG := stream.CombineLatest2(groups.Items(), s.store.Items(),
		func(gs []models.Group, ms []M) groupSplit {
			members, nonMembers := Partition(gs, s.groupIndex(ms))
			return groupSplit{members: members, nonMembers: nonMembers}
		})
	s.subs = append(s.subs, subG, splitGroups.Subscribe(func(sp groupSplit) {
		s.memberGroups.Next(sp.members)
		s.nonMemberGroups.Next(sp.nonMembers)
	}))

	return s
}

func (s *memberships[M]) userIndex(ms []M) map[string]bool {
	idx := make(map[string]bool, len(ms))
	for _, m := range ms {
		if id := s.userID(m); id != "" {
			idx[id] = true
		}
	}
	return idx
}

func (s *memberships[M]) groupIndex(ms []M) map[string]bool {
	idx := make(map[string]bool, len(ms))
	for _, m := range ms {
		if s.groupID == nil {
			break
		}
		if id := s.groupID(m); id != "" {
			idx[id] = true
		}
	}
	return idx
}

func (s *memberships[M]) Store() *store.Store[M] { return s.store }

// MemberUsers holds the users that have a membership here; NonMemberUsers
// the rest. Together they always cover the user store exactly.
func (s *memberships[M]) MemberUsers() *stream.Subject[[]models.User]    { return s.memberUsers }
func (s *memberships[M]) NonMemberUsers() *stream.Subject[[]models.User] { return s.nonMemberUsers }

func (s *memberships[M]) MemberGroups() *stream.Subject[[]models.Group]    { return s.memberGroups }
func (s *memberships[M]) NonMemberGroups() *stream.Subject[[]models.Group] { return s.nonMemberGroups }

// Close detaches the partition streams from their sources.
func (s *memberships[M]) Close() {
	for _, sub := range s.subs {
		sub.Unsubscribe()
	}
}

func (s *memberships[M]) LoadMemberships(ctx context.Context, parentID string) {
	loadList(ctx, s.store, s.log, "memberships", func(ctx context.Context) ([]M, error) {
		return s.api.list(ctx, parentID)
	})
}

func (s *memberships[M]) Create(ctx context.Context, parentID string, m M) (M, error) {
	var zero M
	if err := s.validate(m); err != nil {
		return zero, err
	}
	created, err := s.api.create(ctx, parentID, m)
	if err != nil {
		return zero, err
	}
	s.store.Upsert(created.GetID(), created)
	return created, nil
}

func (s *memberships[M]) Edit(ctx context.Context, m M) (M, error) {
	var zero M
	if err := s.validate(m); err != nil {
		return zero, err
	}
	updated, err := s.api.update(ctx, m.GetID(), m)
	if err != nil {
		return zero, err
	}
	s.store.Upsert(m.GetID(), updated)
	return updated, nil
}

func (s *memberships[M]) Delete(ctx context.Context, id string) error {
	if err := s.api.delete(ctx, id); err != nil {
		return err
	}
	s.store.Remove(id)
	return nil
}
