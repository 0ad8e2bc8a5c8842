package pipeline

import (
	"log/slog"
	"time"

	"github.com/nickbeaird/recordexpungPDX/internal/cache"
	"github.com/nickbeaird/recordexpungPDX/internal/classify"
	"github.com/nickbeaird/recordexpungPDX/internal/eligibility"
	"github.com/nickbeaird/recordexpungPDX/internal/logging"
	"github.com/nickbeaird/recordexpungPDX/internal/metrics"
	"github.com/nickbeaird/recordexpungPDX/internal/model"
	"github.com/nickbeaird/recordexpungPDX/internal/statute"
)

// Pipeline classifies a charge and evaluates its eligibility.
// It holds no per-charge state and is safe for concurrent use.
type Pipeline struct {
	classifier *classify.Classifier
	cache      cache.Cache // nil when caching is disabled
	clock      model.Clock
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// Option customizes a Pipeline
type Option func(*Pipeline)

// WithTable replaces the default statute reference table
func WithTable(table *statute.Table) Option {
	return func(p *Pipeline) {
		p.classifier = classify.NewClassifier(table)
	}
}

// WithClock overrides the clock derived from the configuration
func WithClock(clock model.Clock) Option {
	return func(p *Pipeline) {
		p.clock = clock
	}
}

// WithMetrics records classification and evaluation metrics
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) {
		p.metrics = m
	}
}

// WithCache overrides the cache built from the configuration; nil disables caching.
// Keys carry the table fingerprint, so pipelines with different tables may share one cache.
func WithCache(c cache.Cache) Option {
	return func(p *Pipeline) {
		p.cache = c
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	clock, err := cfg.Clock()
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		classifier: classify.NewClassifier(nil),
		clock:      clock,
		logger:     logging.New("pipeline"),
	}
	if cfg.Cache.Enabled {
		p.cache = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Today returns the day evaluations are measured against
func (p *Pipeline) Today() model.Date {
	return p.clock.Today()
}

// ClassifyAndEvaluate classifies a charge and evaluates it as of the pipeline clock's today
func (p *Pipeline) ClassifyAndEvaluate(charge model.Charge) (model.ExpungementResult, error) {
	return p.EvaluateAt(charge, p.clock.Today())
}

// EvaluateAt classifies a charge and evaluates it as of the given day.
// Failures are returned as *ChargeError.
func (p *Pipeline) EvaluateAt(charge model.Charge, today model.Date) (model.ExpungementResult, error) {
	start := time.Now()
	defer func() {
		p.metrics.ObserveEvaluateLatency(time.Since(start))
	}()

	classification, err := p.classify(charge)
	if err != nil {
		chargeErr := &ChargeError{ChargeID: charge.ID, Err: err}
		p.metrics.IncrementChargeError(chargeErr.Kind())
		p.logger.Debug("charge not classified",
			logging.Charge(charge.ID, charge.Statute),
			"error", err,
		)
		return model.ExpungementResult{}, chargeErr
	}

	typeName := classification.Type.TypeName()
	p.metrics.IncrementClassified(typeName)

	verdict := eligibility.EvaluateTypeEligibility(classification.Type, charge.Disposition, today)
	p.metrics.IncrementEvaluation(typeName, verdict.Status.String())

	result := model.ExpungementResult{
		ChargeID:        charge.ID,
		CaseNumber:      charge.CaseNumber,
		TypeName:        typeName,
		TypeEligibility: verdict,
		Statute:         classification.Statute.String(),
		EvaluatedOn:     today,
	}
	if classification.Range != nil {
		result.StatuteRange = classification.Range.Name
	}

	p.logger.Debug("charge evaluated",
		logging.Charge(charge.ID, result.Statute),
		"type", typeName,
		"status", verdict.Status,
	)

	return result, nil
}

// classify consults the cache before the classifier. Errors are not cached.
func (p *Pipeline) classify(charge model.Charge) (classify.Classification, error) {
	if p.cache == nil {
		return p.classifier.Classify(charge)
	}

	key := cache.CacheKey(p.classifier.Table().Fingerprint(), charge)
	if c, ok := p.cache.Get(key); ok {
		p.metrics.ObserveCacheLookup(true)
		return c, nil
	}
	p.metrics.ObserveCacheLookup(false)

	c, err := p.classifier.Classify(charge)
	if err != nil {
		return classify.Classification{}, err
	}
	p.cache.Set(key, c)
	return c, nil
}
