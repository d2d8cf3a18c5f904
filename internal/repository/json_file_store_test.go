package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID string `json:"id"`
}

func TestJSONFileStore_CreatesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "items.json")

	store, err := NewJSONFileStore[item](path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	items, err := store.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestJSONFileStore_AppendKeepsOrder(t *testing.T) {
	store, err := NewJSONFileStore[item](filepath.Join(t.TempDir(), "items.json"))
	require.NoError(t, err)

	require.NoError(t, store.Append(item{ID: "a"}))
	require.NoError(t, store.Append(item{ID: "b"}))

	items, err := store.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "a"}, {ID: "b"}}, items)
}

func TestJSONFileStore_ExistingFileIsKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"seed"}]`), 0o644))

	store, err := NewJSONFileStore[item](path)
	require.NoError(t, err)
	items, err := store.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "seed"}}, items)
}

func TestJSONFileStore_ConcurrentAppendsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.json")

	first, err := NewJSONFileStore[item](path)
	require.NoError(t, err)
	second, err := NewJSONFileStore[item](path)
	require.NoError(t, err)

	const writers = 40
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store := first
			if i%2 == 1 {
				store = second
			}
			assert.NoError(t, store.Append(item{ID: fmt.Sprintf("item-%d", i)}))
		}(i)
	}
	wg.Wait()

	items, err := first.ReadAll()
	require.NoError(t, err)
	assert.Len(t, items, writers)

	seen := map[string]bool{}
	for _, it := range items {
		seen[it.ID] = true
	}
	assert.Len(t, seen, writers)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "leftover temp file %s", e.Name())
	}
}

func TestJSONFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	store, err := NewJSONFileStore[item](path)
	require.NoError(t, err)

	_, err = store.ReadAll()
	assert.Error(t, err)
	assert.Error(t, store.Append(item{ID: "x"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{not json`, string(data))
}
