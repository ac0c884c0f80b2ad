// Package metrics aggregates interpretation outcomes for an assistant:
// success rate, response time, confidence and user feedback. The
// interpreter itself keeps no state; this is the caller-side counterpart.
package metrics

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/internalerr"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/store"
)

// Summary is a point-in-time view of the aggregated metrics.
type Summary struct {
	Total            int            `json:"total"`
	Successes        int            `json:"successes"`
	SuccessRate      float64        `json:"successRate"`
	AvgResponseTime  time.Duration  `json:"avgResponseTime"`
	AvgConfidence    float64        `json:"avgConfidence"`
	PositiveFeedback int            `json:"positiveFeedback"`
	NegativeFeedback int            `json:"negativeFeedback"`
	ByIntent         map[string]int `json:"byIntent"`
}

// Options configures an Aggregator. All fields are optional.
type Options struct {
	Store      store.EventStore
	Collectors *Collectors
	Logger     *zap.Logger
	Now        func() time.Time
}

// Aggregator maintains running averages over recorded events. It is safe
// for concurrent use.
type Aggregator struct {
	mu         sync.Mutex
	store      store.EventStore
	collectors *Collectors
	log        *zap.Logger
	now        func() time.Time
	entropy    *ulid.MonotonicEntropy

	total, successes   int
	meanResponse       float64 // nanoseconds
	meanConfidence     float64
	positive, negative int
	byIntent           map[string]int
	feedback           map[string]store.Feedback
}

// New creates an Aggregator.
func New(opts Options) *Aggregator {
	a := &Aggregator{
		store:      opts.Store,
		collectors: opts.Collectors,
		log:        opts.Logger,
		now:        opts.Now,
		entropy:    ulid.Monotonic(rand.Reader, 0),
		byIntent:   make(map[string]int),
		feedback:   make(map[string]store.Feedback),
	}
	if a.log == nil {
		a.log = zap.NewNop()
	}
	if a.now == nil {
		a.now = time.Now
	}
	return a
}

// NewEvent derives a metric event from an interpretation.
func NewEvent(res komut.Result, success bool, elapsed time.Duration) store.Event {
	return store.Event{
		Intent:       string(res.Intent.Primary),
		Confidence:   res.Confidence,
		Success:      success,
		ResponseTime: elapsed,
	}
}

// Record assigns an ID and timestamp when missing, persists the event when a
// store is configured, and folds it into the running averages. Nothing is
// counted if persisting fails.
func (a *Aggregator) Record(ctx context.Context, ev store.Event) (store.Event, error) {
	if ev.Confidence < 0 || ev.Confidence > 1 {
		return ev, fmt.Errorf("record event: %w: confidence %v out of [0,1]", internalerr.ErrInvalidInput, ev.Confidence)
	}
	if ev.ResponseTime < 0 {
		return ev, fmt.Errorf("record event: %w: negative response time", internalerr.ErrInvalidInput)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if ev.At.IsZero() {
		ev.At = a.now()
	}
	if ev.ID == "" {
		ev.ID = ulid.MustNew(ulid.Timestamp(ev.At), a.entropy).String()
	}

	if a.store != nil {
		if err := a.store.Append(ctx, ev); err != nil {
			a.log.Error("persist event failed", zap.String("id", ev.ID), zap.Error(err))
			return ev, fmt.Errorf("record event: %w", err)
		}
	}

	a.apply(ev)
	a.log.Debug("event recorded",
		zap.String("id", ev.ID),
		zap.String("intent", ev.Intent),
		zap.Bool("success", ev.Success),
		zap.Duration("responseTime", ev.ResponseTime),
	)
	return ev, nil
}

// Feedback attaches user feedback to a recorded event, replacing any
// earlier verdict for it.
func (a *Aggregator) Feedback(ctx context.Context, id string, fb store.Feedback) error {
	if fb != store.FeedbackPositive && fb != store.FeedbackNegative {
		return fmt.Errorf("feedback: %w: %q", internalerr.ErrInvalidInput, fb)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	prev, ok := a.feedback[id]
	if !ok {
		return fmt.Errorf("feedback for %s: %w", id, internalerr.ErrNotFound)
	}
	if a.store != nil {
		if err := a.store.SetFeedback(ctx, id, fb); err != nil {
			return fmt.Errorf("feedback for %s: %w", id, err)
		}
	}

	a.countFeedback(prev, -1)
	a.countFeedback(fb, 1)
	a.feedback[id] = fb
	if a.collectors != nil {
		a.collectors.feedback.WithLabelValues(string(fb)).Inc()
	}
	return nil
}

// Snapshot returns the current summary.
func (a *Aggregator) Snapshot() Summary {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := Summary{
		Total:            a.total,
		Successes:        a.successes,
		AvgResponseTime:  time.Duration(a.meanResponse),
		AvgConfidence:    a.meanConfidence,
		PositiveFeedback: a.positive,
		NegativeFeedback: a.negative,
		ByIntent:         make(map[string]int, len(a.byIntent)),
	}
	if a.total > 0 {
		s.SuccessRate = float64(a.successes) / float64(a.total)
	}
	for k, v := range a.byIntent {
		s.ByIntent[k] = v
	}
	return s
}

// Replay resets the aggregator and rebuilds it from every stored event.
// It is a no-op without a store.
func (a *Aggregator) Replay(ctx context.Context) error {
	if a.store == nil {
		return nil
	}
	events, err := a.store.List(ctx, time.Time{}, 0)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.total, a.successes = 0, 0
	a.meanResponse, a.meanConfidence = 0, 0
	a.positive, a.negative = 0, 0
	a.byIntent = make(map[string]int)
	a.feedback = make(map[string]store.Feedback)
	for _, ev := range events {
		a.apply(ev)
	}
	a.log.Info("metrics replayed", zap.Int("events", len(events)))
	return nil
}

// apply folds one event into the running state. Callers hold mu.
func (a *Aggregator) apply(ev store.Event) {
	a.total++
	if ev.Success {
		a.successes++
	}
	n := float64(a.total)
	a.meanResponse += (float64(ev.ResponseTime) - a.meanResponse) / n
	a.meanConfidence += (ev.Confidence - a.meanConfidence) / n
	a.byIntent[ev.Intent]++
	a.feedback[ev.ID] = ev.Feedback
	a.countFeedback(ev.Feedback, 1)

	if a.collectors != nil {
		a.collectors.interpretations.WithLabelValues(ev.Intent, outcome(ev.Success)).Inc()
		a.collectors.responseTime.Observe(ev.ResponseTime.Seconds())
		a.collectors.confidence.Observe(ev.Confidence)
		if ev.Feedback != store.FeedbackNone {
			a.collectors.feedback.WithLabelValues(string(ev.Feedback)).Inc()
		}
	}
}

func (a *Aggregator) countFeedback(fb store.Feedback, delta int) {
	switch fb {
	case store.FeedbackPositive:
		a.positive += delta
	case store.FeedbackNegative:
		a.negative += delta
	}
}
