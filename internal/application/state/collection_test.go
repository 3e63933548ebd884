package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id   int64
	name string
}

func (i item) Identity() int64 { return i.id }

func names(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.name
	}
	return out
}

func TestCollection_AppendAndFind(t *testing.T) {
	c := NewCollection[item]()

	c.Append(item{1, "a"})
	c.Append(item{2, "b"})

	found, ok := c.Find(2)
	require.True(t, ok)
	assert.Equal(t, "b", found.name)

	_, ok = c.Find(3)
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b"}, names(c.All()))
}

func TestCollection_AppendExistingIdentityReplacesInPlace(t *testing.T) {
	c := NewCollection(item{1, "a"}, item{2, "b"})

	c.Append(item{1, "a2"})

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"a2", "b"}, names(c.All()))
}

func TestCollection_Prepend(t *testing.T) {
	c := NewCollection(item{1, "a"}, item{2, "b"})

	c.Prepend(item{3, "c"})
	assert.Equal(t, []string{"c", "a", "b"}, names(c.All()))

	c.Prepend(item{2, "b2"})
	assert.Equal(t, []string{"b2", "c", "a"}, names(c.All()))
}

func TestCollection_Replace(t *testing.T) {
	c := NewCollection(item{1, "a"}, item{2, "b"})

	assert.True(t, c.Replace(item{2, "b2"}))
	assert.False(t, c.Replace(item{9, "x"}))
	assert.Equal(t, []string{"a", "b2"}, names(c.All()))
}

func TestCollection_Update(t *testing.T) {
	c := NewCollection(item{1, "a"})

	ok := c.Update(1, func(i item) item {
		i.name += "!"
		return i
	})
	assert.True(t, ok)
	assert.False(t, c.Update(2, func(i item) item { return i }))

	found, _ := c.Find(1)
	assert.Equal(t, "a!", found.name)
}

func TestCollection_Remove(t *testing.T) {
	c := NewCollection(item{1, "a"}, item{2, "b"}, item{3, "c"})

	assert.True(t, c.Remove(2))
	assert.False(t, c.Remove(2))
	assert.Equal(t, []string{"a", "c"}, names(c.All()))
}

func TestCollection_ReplaceAllDropsDuplicates(t *testing.T) {
	c := NewCollection(item{9, "old"})

	c.ReplaceAll([]item{{1, "a"}, {2, "b"}, {1, "dup"}})

	assert.Equal(t, []string{"a", "b"}, names(c.All()))
	_, ok := c.Find(9)
	assert.False(t, ok)
}

func TestCollection_SeedOnlyWhenEmpty(t *testing.T) {
	c := NewCollection[item]()

	assert.True(t, c.Seed([]item{{1, "a"}}))
	assert.False(t, c.Seed([]item{{2, "b"}}))
	assert.Equal(t, []string{"a"}, names(c.All()))
}

func TestCollection_AllReturnsCopy(t *testing.T) {
	c := NewCollection(item{1, "a"})

	all := c.All()
	all[0].name = "mutated"

	found, _ := c.Find(1)
	assert.Equal(t, "a", found.name)
}

func TestLoadingTracker(t *testing.T) {
	var l LoadingTracker
	assert.False(t, l.IsLoading())

	doneA := l.Begin()
	doneB := l.Begin()
	assert.True(t, l.IsLoading())

	doneA()
	assert.True(t, l.IsLoading(), "still loading while another load is in flight")

	doneA()
	assert.True(t, l.IsLoading(), "settling twice must not release another load")

	doneB()
	assert.False(t, l.IsLoading())
}

func TestCollection_SeedRefusedOnceTouched(t *testing.T) {
	tests := []struct {
		name  string
		touch func(c *Collection[item])
	}{
		{"emptied by remove", func(c *Collection[item]) {
			c.Append(item{1, "a"})
			c.Remove(1)
		}},
		{"empty fetch", func(c *Collection[item]) { c.ReplaceAll(nil) }},
		{"update of a missing record", func(c *Collection[item]) {
			c.Update(1, func(i item) item { return i })
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollection[item]()
			tt.touch(c)
			require.Zero(t, c.Len())

			assert.False(t, c.Seed([]item{{1, "cached"}}))
			assert.Zero(t, c.Len())
		})
	}
}

func TestCollection_ResetMakesSeedableAgain(t *testing.T) {
	c := NewCollection[item]()
	c.ReplaceAll([]item{{1, "a"}, {2, "b"}})

	c.Reset()

	assert.Zero(t, c.Len())
	assert.True(t, c.Seed([]item{{3, "c"}}))
	assert.Equal(t, []string{"c"}, names(c.All()))
}
