package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStores(t *testing.T) map[string]MarkStore {
	t.Helper()
	sqliteStore, err := NewSQLiteStore()
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]MarkStore{
		"memory": NewMemoryStore(),
		"sqlite": sqliteStore,
	}
}

func TestMarkStoreKeepsSubmissionOrder(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			input := []Mark{
				{X: "10", Y: "20", Label: "3"},
				{X: "10", Y: "20", Label: "1"},
				{X: "abc", Y: "", Label: "table two"},
			}
			for i, m := range input {
				saved, err := store.Append(m)
				require.NoError(t, err)
				assert.Equal(t, uint(i+1), saved.ID)
				assert.False(t, saved.CreatedAt.IsZero())
			}

			marks, err := store.List()
			require.NoError(t, err)
			require.Len(t, marks, 3)
			for i, m := range marks {
				assert.Equal(t, uint(i+1), m.ID)
				assert.Equal(t, input[i].X, m.X)
				assert.Equal(t, input[i].Y, m.Y)
				assert.Equal(t, input[i].Label, m.Label)
			}
		})
	}
}

func TestSQLiteStoresAreIsolated(t *testing.T) {
	first, err := NewSQLiteStore()
	require.NoError(t, err)
	defer first.Close()
	second, err := NewSQLiteStore()
	require.NoError(t, err)
	defer second.Close()

	_, err = first.Append(Mark{X: "1", Y: "2", Label: "1"})
	require.NoError(t, err)

	marks, err := second.List()
	require.NoError(t, err)
	assert.Empty(t, marks)
}

func TestMemoryStoreListIsACopy(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Append(Mark{X: "1", Y: "1", Label: "a"})
	require.NoError(t, err)

	marks, _ := store.List()
	marks[0].Label = "changed"

	again, _ := store.List()
	assert.Equal(t, "a", again[0].Label)
}

func TestOpenMarkStore(t *testing.T) {
	store, err := OpenMarkStore("memory")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = OpenMarkStore("")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = OpenMarkStore("sqlite")
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, store)
	assert.NoError(t, store.Close())

	_, err = OpenMarkStore("mysql")
	assert.Error(t, err)
}

func TestMarkCenter(t *testing.T) {
	x, y, err := Mark{X: "12.5", Y: "-3"}.Center()
	require.NoError(t, err)
	assert.Equal(t, 12.5, x)
	assert.Equal(t, -3.0, y)

	_, _, err = Mark{ID: 4, X: "twelve", Y: "3"}.Center()
	assert.ErrorIs(t, err, ErrBadCoordinate)
	assert.Contains(t, err.Error(), "mark 4")

	_, _, err = Mark{X: "1", Y: ""}.Center()
	assert.ErrorIs(t, err, ErrBadCoordinate)
}
