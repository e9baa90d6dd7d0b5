package scores

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC)

func TestRecord_SortsDescending(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "scores.json"))
	require.NoError(t, err)

	l.Record("Science", 3, testNow)
	l.Record("Science", 8, testNow)
	l.Record("Science", 5, testNow)

	top := l.Top("Science")
	require.Len(t, top, 3)
	assert.Equal(t, []int{8, 5, 3}, []int{top[0].Score, top[1].Score, top[2].Score})
}

func TestRecord_CapsAtFive(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "scores.json"))
	require.NoError(t, err)

	for _, score := range []int{4, 7, 2, 9, 6} {
		l.Record("Science", score, testNow)
	}

	// A sixth score below the current top five leaves the list unchanged.
	l.Record("Science", 1, testNow)
	top := l.Top("Science")
	require.Len(t, top, MaxEntriesPerCategory)
	assert.Equal(t, 2, top[4].Score)

	// A sixth score above the lowest evicts it.
	l.Record("Science", 8, testNow)
	top = l.Top("Science")
	require.Len(t, top, MaxEntriesPerCategory)
	assert.Equal(t, []int{9, 8, 7, 6, 4},
		[]int{top[0].Score, top[1].Score, top[2].Score, top[3].Score, top[4].Score})
}

func TestRecord_StableTies(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "scores.json"))
	require.NoError(t, err)

	l.Record("Science", 5, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	l.Record("Science", 5, time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC))

	top := l.Top("Science")
	require.Len(t, top, 2)
	assert.Equal(t, "2025-01-01 00:00", top[0].Date, "earlier equal score keeps its rank")
	assert.Equal(t, "2025-02-02 00:00", top[1].Date)
}

func TestRecord_CategoriesIndependent(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "scores.json"))
	require.NoError(t, err)

	l.Record("Science", 5, testNow)
	l.Record("History", 3, testNow)

	assert.Equal(t, []string{"History", "Science"}, l.Categories())
	assert.Len(t, l.Top("Science"), 1)
	assert.Len(t, l.Top("History"), 1)
	assert.Empty(t, l.Top("Geography"))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")

	l, err := Load(path)
	require.NoError(t, err)
	l.Record("Science", 7, testNow)
	l.Record("Science", 9, testNow)
	require.NoError(t, l.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	top := reloaded.Top("Science")
	require.Len(t, top, 2)
	assert.Equal(t, 9, top[0].Score)
	assert.Equal(t, 7, top[1].Score)
	assert.Equal(t, "2025-03-14 09:26", top[0].Date)
}

func TestLoad_MissingFile(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.True(t, l.Empty())
}

func TestLoad_MalformedFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	l, err := Load(path)
	assert.Error(t, err, "malformed file is reported for logging")
	require.NotNil(t, l)
	assert.True(t, l.Empty(), "malformed file yields an empty ledger")

	// The ledger stays usable.
	l.Record("Science", 4, testNow)
	require.NoError(t, l.Save())
	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, reloaded.Top("Science"), 1)
}

func TestReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	l, err := Load(path)
	require.NoError(t, err)
	l.Record("Science", 5, testNow)
	require.NoError(t, l.Save())

	require.NoError(t, l.Reset())
	assert.True(t, l.Empty())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "score file removed")

	// Resetting again is a no-op.
	require.NoError(t, l.Reset())
}
