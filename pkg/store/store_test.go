package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   string
	Name string
}

func (r row) GetID() string { return r.ID }

func ids(items []row) []string {
	var out []string
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestUpsertKeepsIDsUnique(t *testing.T) {
	s := New[row]()

	s.Upsert("1", row{ID: "1", Name: "A"})
	s.Upsert("2", row{ID: "2", Name: "B"})
	s.Upsert("1", row{ID: "1", Name: "A2"})

	all := s.All()
	require.Equal(t, []string{"1", "2"}, ids(all))
	assert.Equal(t, "A2", all[0].Name, "last applied value wins, position preserved")
}

func TestUpsertMissingIDInserts(t *testing.T) {
	s := New[row]()
	s.Upsert("9", row{ID: "9", Name: "new"})

	got, ok := s.Get("9")
	require.True(t, ok)
	assert.Equal(t, "new", got.Name)
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := New[row]()
	s.Set([]row{{ID: "1"}, {ID: "2"}})

	s.Remove("nope")
	assert.Equal(t, []string{"1", "2"}, ids(s.All()))

	s.Remove("1")
	s.Remove("1")
	assert.Equal(t, []string{"2"}, ids(s.All()))
}

func TestSetReplacesWholesale(t *testing.T) {
	s := New[row]()
	s.Set([]row{{ID: "a"}, {ID: "b"}})
	s.Set([]row{{ID: "c"}})

	assert.Equal(t, []string{"c"}, ids(s.All()))
}

func TestSetCollapsesDuplicateIDs(t *testing.T) {
	s := New[row]()
	s.Set([]row{{ID: "a", Name: "first"}, {ID: "b"}, {ID: "a", Name: "second"}})

	all := s.All()
	require.Equal(t, []string{"a", "b"}, ids(all))
	assert.Equal(t, "second", all[0].Name)
}

func TestItemsPublishInMutationOrder(t *testing.T) {
	s := New[row]()

	var snapshots [][]string
	sub := s.Items().Subscribe(func(items []row) { snapshots = append(snapshots, ids(items)) })
	defer sub.Unsubscribe()

	s.Set([]row{{ID: "1"}})
	s.Upsert("2", row{ID: "2"})
	s.Remove("1")

	require.Equal(t, [][]string{nil, {"1"}, {"1", "2"}, {"2"}}, snapshots)
}

func TestLoadingAndActiveFlags(t *testing.T) {
	s := New[row]()

	assert.False(t, s.Loading().Value())
	s.SetLoading(true)
	assert.True(t, s.Loading().Value())

	s.SetActive("2")
	assert.Equal(t, "2", s.Active().Value())
	s.SetActive("")
	assert.Equal(t, "", s.Active().Value())
}

func TestPublishedSnapshotsAreImmutable(t *testing.T) {
	s := New[row]()
	s.Set([]row{{ID: "1", Name: "A"}})

	before := s.All()
	s.Upsert("1", row{ID: "1", Name: "B"})

	assert.Equal(t, "A", before[0].Name, "earlier snapshot must not change under later mutation")
}

func TestPatchAppliesOnlyWhenPresent(t *testing.T) {
	s := New[row]()
	s.Set([]row{{ID: "1", Name: "A"}})

	s.Patch("1", func(r row) row { r.Name = "patched"; return r })
	got, _ := s.Get("1")
	assert.Equal(t, "patched", got.Name)

	s.Patch("missing", func(r row) row { r.Name = "x"; return r })
	assert.Len(t, s.All(), 1)
}
