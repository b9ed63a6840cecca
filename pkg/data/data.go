// Package data holds the orchestration layer between the REST client and
// the entity stores: each service owns one store, issues the HTTP calls for
// its resource and translates confirmed responses into store mutations. The
// sync service feeds server push events through the same mutation methods,
// so local and remote changes converge on one state shape.
//
// List loads deliberately swallow failures: the store is set to the empty
// collection and the failure is only logged, so a failed load is
// indistinguishable from zero rows. Write failures are returned to the
// caller; the store is only mutated after the server confirms.
package data

import (
	"context"

	"github.com/cmu-sei/cite.go/pkg/logger"
	"github.com/cmu-sei/cite.go/pkg/store"
)

// loadList runs one full-collection fetch against a store, holding the
// loading flag for the duration.
func loadList[T store.Entity](ctx context.Context, s *store.Store[T], log logger.Logger, resource string, fetch func(context.Context) ([]T, error)) {
	s.SetLoading(true)
	defer s.SetLoading(false)

	items, err := fetch(ctx)
	if err != nil {
		log.Warn("list load failed, treating as empty", "resource", resource, "error", err)
		s.Set(nil)
		return
	}
	s.Set(items)
}

// Partition splits principals by membership, preserving input order in both
// halves. Every principal lands in exactly one half.
func Partition[P store.Entity](principals []P, isMember map[string]bool) (members, nonMembers []P) {
	members = []P{}
	nonMembers = []P{}
	for _, p := range principals {
		if isMember[p.GetID()] {
			members = append(members, p)
		} else {
			nonMembers = append(nonMembers, p)
		}
	}
	return members, nonMembers
}
