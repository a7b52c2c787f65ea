package rollup

import (
	"context"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cotijoy/elasticsearch/internal/domain"
	"github.com/cotijoy/elasticsearch/internal/metadata"
	"github.com/cotijoy/elasticsearch/internal/pattern"
)

// DefaultParallelism bounds the per-index resolution fan-out when the caller
// does not choose one.
const DefaultParallelism = 4

// Service aggregates rollup capabilities across a cluster metadata snapshot.
// It is stateless between calls; every response is built fresh from the
// snapshot it is handed.
type Service struct {
	logger      *zap.Logger
	clock       clock.Clock
	parallelism int
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for per-index debug decisions.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the clock used to measure response times.
func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithParallelism bounds how many indices are resolved concurrently.
// Values below 1 mean serial resolution.
func WithParallelism(n int) Option {
	return func(s *Service) {
		if n < 1 {
			n = 1
		}
		s.parallelism = n
	}
}

// NewService builds a discovery service with the given options.
func NewService(opts ...Option) *Service {
	s := &Service{
		logger:      zap.NewNop(),
		clock:       clock.New(),
		parallelism: DefaultParallelism,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetCaps resolves indexPattern against the snapshot and returns the rollup
// capabilities of every matching index that hosts at least one parseable job
// descriptor. Matching indices without rollup metadata are silently dropped;
// an empty snapshot or a pattern matching nothing yields an empty map. The
// only error condition is a nil snapshot, which is a caller bug.
//
// Candidates are resolved concurrently with a partition-then-merge: each
// candidate owns one result slot, so the final union needs no locking.
func (s *Service) GetCaps(ctx context.Context, indexPattern string, snapshot metadata.Snapshot) (map[string]*domain.IndexCaps, error) {
	if snapshot == nil {
		return nil, ErrNilSnapshot
	}

	candidates := pattern.Filter(indexPattern, snapshot.Names())
	s.logger.Debug("resolving rollup caps",
		zap.String("pattern", indexPattern),
		zap.Int("indices", len(snapshot)),
		zap.Int("candidates", len(candidates)))

	results := make([]*domain.IndexCaps, len(candidates))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for i, name := range candidates {
		g.Go(func() error {
			results[i] = FindIndexCaps(name, snapshot[name], s.logger)
			return nil
		})
	}
	// Resolution is pure; no goroutine returns an error.
	_ = g.Wait()

	caps := make(map[string]*domain.IndexCaps, len(candidates))
	for i, name := range candidates {
		if results[i] == nil {
			s.logger.Debug("index has no rollup metadata", zap.String("index", name))
			continue
		}
		caps[name] = results[i]
	}
	return caps, nil
}

// GetCapsResponse runs GetCaps and wraps the result with the timing and
// count summary the CLI serializes.
func (s *Service) GetCapsResponse(ctx context.Context, indexPattern string, snapshot metadata.Snapshot) (*domain.CapsResponse, error) {
	start := s.clock.Now()
	caps, err := s.GetCaps(ctx, indexPattern, snapshot)
	if err != nil {
		return nil, err
	}

	jobCount := 0
	for _, ic := range caps {
		jobCount += len(ic.Jobs)
	}
	return &domain.CapsResponse{
		Pattern:    indexPattern,
		TookMillis: s.clock.Since(start).Milliseconds(),
		IndexCount: len(caps),
		JobCount:   jobCount,
		Indices:    caps,
	}, nil
}
