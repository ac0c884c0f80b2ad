package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/intent"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/internalerr"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/store"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/store/memstore"
)

var clock = func() time.Time { return time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC) }

func sampleEvents() []store.Event {
	return []store.Event{
		{Intent: "CREATE", Confidence: 0.9, Success: true, ResponseTime: 10 * time.Millisecond},
		{Intent: "READ", Confidence: 0.7, Success: true, ResponseTime: 30 * time.Millisecond},
		{Intent: "UNKNOWN", Confidence: 0.1, Success: false, ResponseTime: 5 * time.Millisecond},
		{Intent: "CREATE", Confidence: 0.8, Success: true, ResponseTime: 15 * time.Millisecond, Feedback: store.FeedbackPositive},
	}
}

func TestIncrementalAveragesMatchBatch(t *testing.T) {
	ctx := context.Background()
	agg := New(Options{Logger: zaptest.NewLogger(t), Now: clock})

	events := sampleEvents()
	var sumConf float64
	var sumResp time.Duration
	for _, ev := range events {
		_, err := agg.Record(ctx, ev)
		require.NoError(t, err)
		sumConf += ev.Confidence
		sumResp += ev.ResponseTime
	}

	s := agg.Snapshot()
	n := float64(len(events))
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 3, s.Successes)
	assert.InDelta(t, 0.75, s.SuccessRate, 1e-9)
	assert.InDelta(t, sumConf/n, s.AvgConfidence, 1e-9)
	assert.InDelta(t, float64(sumResp)/n, float64(s.AvgResponseTime), 1)
	assert.Equal(t, 1, s.PositiveFeedback)
	assert.Equal(t, map[string]int{"CREATE": 2, "READ": 1, "UNKNOWN": 1}, s.ByIntent)
}

func TestRecordAssignsIDs(t *testing.T) {
	ctx := context.Background()
	agg := New(Options{Now: clock})

	a, err := agg.Record(ctx, store.Event{Intent: "HELP", Confidence: 0.5})
	require.NoError(t, err)
	b, err := agg.Record(ctx, store.Event{Intent: "HELP", Confidence: 0.5})
	require.NoError(t, err)

	assert.Len(t, a.ID, 26)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Less(t, a.ID, b.ID)
	assert.Equal(t, clock(), a.At)
}

func TestRecordRejectsInvalidEvents(t *testing.T) {
	ctx := context.Background()
	agg := New(Options{})

	_, err := agg.Record(ctx, store.Event{Confidence: 1.2})
	assert.ErrorIs(t, err, internalerr.ErrInvalidInput)
	_, err = agg.Record(ctx, store.Event{ResponseTime: -time.Second})
	assert.ErrorIs(t, err, internalerr.ErrInvalidInput)
	assert.Equal(t, 0, agg.Snapshot().Total)
}

func TestFeedbackReplacesEarlierVerdict(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	agg := New(Options{Store: st, Now: clock})

	ev, err := agg.Record(ctx, store.Event{Intent: "READ", Confidence: 0.6, Success: true})
	require.NoError(t, err)

	require.NoError(t, agg.Feedback(ctx, ev.ID, store.FeedbackPositive))
	require.NoError(t, agg.Feedback(ctx, ev.ID, store.FeedbackNegative))

	s := agg.Snapshot()
	assert.Equal(t, 0, s.PositiveFeedback)
	assert.Equal(t, 1, s.NegativeFeedback)

	stored, err := st.List(ctx, time.Time{}, 0)
	require.NoError(t, err)
	assert.Equal(t, store.FeedbackNegative, stored[0].Feedback)

	assert.ErrorIs(t, agg.Feedback(ctx, "unknown", store.FeedbackPositive), internalerr.ErrNotFound)
	assert.ErrorIs(t, agg.Feedback(ctx, ev.ID, "meh"), internalerr.ErrInvalidInput)
}

func TestReplayRebuildsFromStore(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()

	first := New(Options{Store: st, Now: clock})
	for _, ev := range sampleEvents() {
		_, err := first.Record(ctx, ev)
		require.NoError(t, err)
	}

	second := New(Options{Store: st, Now: clock})
	require.NoError(t, second.Replay(ctx))
	assert.Equal(t, first.Snapshot(), second.Snapshot())
}

func TestCollectors(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	col := NewCollectors()
	require.NoError(t, col.Register(reg))

	agg := New(Options{Collectors: col, Now: clock})
	for _, ev := range sampleEvents() {
		_, err := agg.Record(ctx, ev)
		require.NoError(t, err)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(col.interpretations.WithLabelValues("CREATE", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(col.interpretations.WithLabelValues("UNKNOWN", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(col.feedback.WithLabelValues("positive")))
	assert.Equal(t, 1, testutil.CollectAndCount(col.responseTime))

	assert.Error(t, col.Register(reg), "registering twice must fail")
}

func TestNewEvent(t *testing.T) {
	res := komut.New(komut.Options{Now: clock}).Interpret("Yeni hak sahibi ekle")

	ev := NewEvent(res, res.Intent.Primary != intent.Unknown, 20*time.Millisecond)
	assert.Equal(t, "CREATE", ev.Intent)
	assert.True(t, ev.Success)
	assert.Equal(t, res.Confidence, ev.Confidence)
	assert.Equal(t, 20*time.Millisecond, ev.ResponseTime)
	assert.Empty(t, ev.ID)
}
