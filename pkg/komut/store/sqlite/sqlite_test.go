package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/internalerr"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/store"
)

func openTemp(t *testing.T) (store.EventStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metrics.db")
	st, err := OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	return st, path
}

func TestSQLiteAppendAndList(t *testing.T) {
	ctx := context.Background()
	st, _ := openTemp(t)
	defer st.Close()

	at := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	ev := store.Event{
		ID:           "01HZY0000000000000000000A1",
		At:           at,
		Intent:       "REPORT",
		Confidence:   0.85,
		Success:      true,
		ResponseTime: 12 * time.Millisecond,
	}
	require.NoError(t, st.Append(ctx, ev))
	require.NoError(t, st.Append(ctx, store.Event{
		ID:     "01HZY0000000000000000000A2",
		At:     at.Add(time.Hour),
		Intent: "UNKNOWN",
	}))

	events, err := st.List(ctx, time.Time{}, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, ev, events[0])
	assert.False(t, events[1].Success)

	later, err := st.List(ctx, at.Add(time.Minute), 0)
	require.NoError(t, err)
	require.Len(t, later, 1)
	assert.Equal(t, "UNKNOWN", later[0].Intent)

	limited, err := st.List(ctx, time.Time{}, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSQLiteDuplicateID(t *testing.T) {
	ctx := context.Background()
	st, _ := openTemp(t)
	defer st.Close()

	ev := store.Event{ID: "dup", At: time.Now(), Intent: "HELP"}
	require.NoError(t, st.Append(ctx, ev))
	assert.Error(t, st.Append(ctx, ev))
	assert.ErrorIs(t, st.Append(ctx, store.Event{}), internalerr.ErrInvalidInput)
}

func TestSQLiteFeedback(t *testing.T) {
	ctx := context.Background()
	st, _ := openTemp(t)
	defer st.Close()

	require.NoError(t, st.Append(ctx, store.Event{ID: "e1", At: time.Now(), Intent: "READ"}))
	require.NoError(t, st.SetFeedback(ctx, "e1", store.FeedbackNegative))

	events, err := st.List(ctx, time.Time{}, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, store.FeedbackNegative, events[0].Feedback)

	assert.ErrorIs(t, st.SetFeedback(ctx, "nope", store.FeedbackPositive), internalerr.ErrNotFound)
}

func TestSQLiteReopenKeepsEvents(t *testing.T) {
	ctx := context.Background()
	st, path := openTemp(t)
	require.NoError(t, st.Append(ctx, store.Event{ID: "keep", At: time.Now(), Intent: "CREATE"}))
	require.NoError(t, st.Close())

	reopened, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	events, err := reopened.List(ctx, time.Time{}, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "keep", events[0].ID)
}
