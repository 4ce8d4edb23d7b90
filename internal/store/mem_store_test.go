package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore_ConcurrentAddsGetDistinctIDs(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l, err := m.AddLanguage(ctx, AddLanguage{Name: "lang"})
			if assert.NoError(t, err) {
				ids <- l.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	langs, err := m.ListLanguages(ctx)
	require.NoError(t, err)
	require.Len(t, langs, n)
	for i := 1; i < len(langs); i++ {
		assert.Greater(t, langs[i-1].ID, langs[i].ID)
	}
}

func TestMemStore_ReturnsSnapshots(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()

	l, err := m.AddLanguage(ctx, AddLanguage{Name: "Spanish"})
	require.NoError(t, err)
	l.Name = "mutated by caller"

	langs, err := m.ListLanguages(ctx)
	require.NoError(t, err)
	require.Len(t, langs, 1)
	assert.Equal(t, "Spanish", langs[0].Name)
}

func TestMemStore_ErrorKinds(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()

	_, err := m.UpdateLanguage(ctx, 7, UpdateLanguage{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, IsUnexpected(err))

	_, err = m.AddWord(ctx, 7, AddWord{Name: "hola", Means: "hello"})
	var ue *UnexpectedError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "add word", ue.Op)
	assert.ErrorIs(t, err, ErrConstraint)
	assert.Contains(t, err.Error(), "unexpected storage error")
}
