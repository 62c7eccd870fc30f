package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/MikeSquared-Agency/wqi/internal/config"
	"github.com/MikeSquared-Agency/wqi/internal/hermes"
	"github.com/MikeSquared-Agency/wqi/internal/metrics"
	"github.com/MikeSquared-Agency/wqi/internal/wqi"
)

// ErrNonFinite is returned when a computation overflows into NaN or ±Inf and
// cannot be reported.
var ErrNonFinite = errors.New("index result is not finite")

// Sample is one evaluation request. Measurement fields are inlined next to
// the optional sample_id and weights.
type Sample struct {
	SampleID string `json:"sample_id,omitempty"`
	wqi.ParameterSet
	Weights json.RawMessage `json:"weights,omitempty"`
}

type Evaluation struct {
	ID       uuid.UUID `json:"id"`
	SampleID string    `json:"sample_id,omitempty"`
	wqi.Result
	Weights    map[string]float64 `json:"weights"`
	ComputedAt time.Time          `json:"computed_at"`
}

// BatchItem is the outcome of one sample in a batch, in input position.
type BatchItem struct {
	Position   int         `json:"position"`
	SampleID   string      `json:"sample_id,omitempty"`
	Evaluation *Evaluation `json:"evaluation,omitempty"`
	Error      string      `json:"error,omitempty"`
}

type Broker struct {
	hermes      hermes.Client
	metrics     *metrics.Metrics
	logger      *slog.Logger
	concurrency int
	clock       clockwork.Clock

	mu      sync.RWMutex
	weights wqi.WeightSet
}

// New builds the evaluation service. h may be nil when messaging is disabled.
func New(h hermes.Client, m *metrics.Metrics, cfg *config.Config, logger *slog.Logger) *Broker {
	concurrency := cfg.Batch.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Broker{
		hermes:      h,
		metrics:     m,
		logger:      logger.With("component", "broker"),
		concurrency: concurrency,
		clock:       clockwork.NewRealClock(),
		weights:     cfg.Scoring.Weights,
	}
}

// SetClock replaces the time source used for event timestamps.
func (b *Broker) SetClock(c clockwork.Clock) {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	b.clock = c
}

// Weights returns the current service default weights.
func (b *Broker) Weights() wqi.WeightSet {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.weights
}

// SetWeights replaces the service default weights.
func (b *Broker) SetWeights(w wqi.WeightSet) error {
	if err := w.Validate(); err != nil {
		return err
	}
	b.mu.Lock()
	b.weights = w
	b.mu.Unlock()

	b.logger.Info("default weights updated", "weights", w.Map(), "sum", w.Sum())
	b.publish("weights", hermes.SubjectWeightsUpdated, hermes.WeightsUpdatedEvent{
		Weights:   w.Map(),
		UpdatedAt: b.clock.Now().UTC(),
	})
	return nil
}

// Evaluate computes the index for one sample. Weights in the sample are
// resolved over the current defaults.
func (b *Broker) Evaluate(ctx context.Context, s Sample) (Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return Evaluation{}, err
	}

	ev, err := b.evaluate(s)
	if err != nil {
		reason := failureReason(err)
		b.metrics.EvaluationErrors.WithLabelValues(reason).Inc()
		b.logger.Warn("evaluation rejected", "sample_id", s.SampleID, "reason", reason, "error", err)
		b.publish("failed", hermes.SubjectSampleFailed, hermes.SampleFailedEvent{
			SampleID: s.SampleID,
			Error:    err.Error(),
			Reason:   reason,
			FailedAt: b.clock.Now().UTC(),
		})
		return Evaluation{}, err
	}

	b.metrics.Evaluations.WithLabelValues(string(ev.Classification)).Inc()
	b.metrics.IndexValue.Observe(ev.Index)
	b.logger.Debug("index computed",
		"evaluation_id", ev.ID,
		"sample_id", ev.SampleID,
		"index", ev.Index,
		"classification", ev.Classification,
	)
	b.publish("computed", hermes.SubjectIndexComputed(ev.ID.String()), hermes.IndexComputedEvent{
		EvaluationID:   ev.ID.String(),
		SampleID:       ev.SampleID,
		Index:          ev.Index,
		Classification: ev.Classification,
		ComputedAt:     ev.ComputedAt,
	})
	return ev, nil
}

func (b *Broker) evaluate(s Sample) (Evaluation, error) {
	w, err := wqi.ParseWeights(s.Weights, b.Weights())
	if err != nil {
		return Evaluation{}, err
	}
	res, err := wqi.Compute(s.ParameterSet, w)
	if err != nil {
		return Evaluation{}, err
	}
	if !finite(res) {
		return Evaluation{}, fmt.Errorf("%w: index=%v saturation=%v", ErrNonFinite, res.Index, res.SaturationPercent)
	}
	return Evaluation{
		ID:         uuid.New(),
		SampleID:   s.SampleID,
		Result:     res,
		Weights:    w.Map(),
		ComputedAt: b.clock.Now().UTC(),
	}, nil
}

// EvaluateBatch evaluates samples concurrently. The returned items keep the
// input order and a failing sample never aborts the others.
func (b *Broker) EvaluateBatch(ctx context.Context, samples []Sample) []BatchItem {
	b.metrics.BatchSize.Observe(float64(len(samples)))

	items := make([]BatchItem, len(samples))
	var g errgroup.Group
	g.SetLimit(b.concurrency)
	for i, s := range samples {
		i, s := i, s
		g.Go(func() error {
			item := BatchItem{Position: i, SampleID: s.SampleID}
			ev, err := b.Evaluate(ctx, s)
			if err != nil {
				item.Error = err.Error()
			} else {
				item.Evaluation = &ev
			}
			items[i] = item
			return nil
		})
	}
	_ = g.Wait()
	return items
}

// SetupSubscriptions registers the NATS intake for submitted samples.
func (b *Broker) SetupSubscriptions() error {
	if b.hermes == nil {
		return nil
	}
	return b.hermes.Subscribe(hermes.SubjectSampleSubmitted, func(_ string, data []byte) {
		var evt hermes.SampleSubmittedEvent
		if err := json.Unmarshal(data, &evt); err != nil {
			b.logger.Warn("invalid sample submitted event", "error", err)
			b.metrics.EvaluationErrors.WithLabelValues("malformed").Inc()
			b.publish("failed", hermes.SubjectSampleFailed, hermes.SampleFailedEvent{
				Error:    err.Error(),
				Reason:   "malformed",
				FailedAt: b.clock.Now().UTC(),
			})
			return
		}
		// Failures are already logged and published by Evaluate.
		_, _ = b.Evaluate(context.Background(), Sample{
			SampleID:     evt.SampleID,
			ParameterSet: evt.ParameterSet,
			Weights:      evt.Weights,
		})
	})
}

func (b *Broker) publish(kind, subject string, data interface{}) {
	if b.hermes == nil {
		return
	}
	if err := b.hermes.Publish(subject, data); err != nil {
		b.logger.Warn("publish failed", "subject", subject, "error", err)
		return
	}
	b.metrics.EventsPublished.WithLabelValues(kind).Inc()
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, wqi.ErrNonPositiveColiforms):
		return "non_positive_coliforms"
	case errors.Is(err, wqi.ErrUndefinedSubIndex):
		return "undefined_sub_index"
	case errors.Is(err, wqi.ErrWeightLength),
		errors.Is(err, wqi.ErrUnknownWeightKey),
		errors.Is(err, wqi.ErrWeightType):
		return "invalid_weights"
	case errors.Is(err, ErrNonFinite):
		return "non_finite"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "internal"
	}
}

func finite(r wqi.Result) bool {
	if !isFinite(r.Index) || !isFinite(r.SaturationPercent) {
		return false
	}
	for _, s := range r.SubIndices {
		if !isFinite(s.Quality) || !isFinite(s.Contribution) {
			return false
		}
	}
	return true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
