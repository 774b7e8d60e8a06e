package buffer

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "spool.db"), "audit")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testItem(userID int64, ts time.Time) Item {
	return Item{
		UserID:    userID,
		Action:    "LOGIN",
		Data:      json.RawMessage(`{}`),
		Timestamp: ts,
	}
}

func TestEnqueueAndSize(t *testing.T) {
	store := openTestStore(t)

	size, err := store.Size()
	require.NoError(t, err)
	assert.Zero(t, size)

	require.NoError(t, store.Enqueue(testItem(1, time.Now())))
	require.NoError(t, store.Enqueue(testItem(2, time.Now())))

	size, err = store.Size()
	require.NoError(t, err)
	assert.Equal(t, 2, size)
}

func TestGetBatchPreservesArrivalOrder(t *testing.T) {
	store := openTestStore(t)
	base := time.Now()

	require.NoError(t, store.Enqueue(testItem(3, base.Add(2*time.Second))))
	require.NoError(t, store.Enqueue(testItem(1, base)))
	require.NoError(t, store.Enqueue(testItem(2, base.Add(time.Second))))

	items, err := store.GetBatch(10)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, int64(1), items[0].UserID)
	assert.Equal(t, int64(2), items[1].UserID)
	assert.Equal(t, int64(3), items[2].UserID)
}

func TestGetBatchHonorsLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Enqueue(testItem(int64(i), time.Now().Add(time.Duration(i)*time.Millisecond))))
	}

	items, err := store.GetBatch(3)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	// Peeking does not consume.
	size, err := store.Size()
	require.NoError(t, err)
	assert.Equal(t, 5, size)
}

func TestRemove(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Enqueue(testItem(1, time.Now())))

	items, err := store.GetBatch(1)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, store.Remove(items[0]))
	size, err := store.Size()
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestRequeueMovesItemToTheBack(t *testing.T) {
	store := openTestStore(t)
	base := time.Now().Add(-time.Hour)

	require.NoError(t, store.Enqueue(testItem(1, base)))
	require.NoError(t, store.Enqueue(testItem(2, base.Add(time.Second))))

	items, err := store.GetBatch(1)
	require.NoError(t, err)
	require.Equal(t, int64(1), items[0].UserID)

	require.NoError(t, store.Remove(items[0]))
	require.NoError(t, store.Requeue(items[0]))

	items, err = store.GetBatch(10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].UserID)
	assert.Equal(t, int64(1), items[1].UserID)
}

func TestCleanup(t *testing.T) {
	store := openTestStore(t)
	old := time.Now().Add(-48 * time.Hour)

	require.NoError(t, store.Enqueue(testItem(1, old)))
	require.NoError(t, store.Enqueue(testItem(2, time.Now())))

	require.NoError(t, store.Cleanup(time.Now().Add(-24*time.Hour)))

	items, err := store.GetBatch(10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].UserID)
}
