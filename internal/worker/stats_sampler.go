package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/polkiloo/storeratings/internal/domain/model"
)

const sampleTimeout = 5 * time.Second

var platformEntities = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "storeratings_platform_entities",
		Help: "Platform totals as of the last sample",
	},
	[]string{"kind"},
)

// CountsSource exposes the platform counters the sampler publishes.
type CountsSource interface {
	PlatformCounts(ctx context.Context) (*model.PlatformStats, error)
}

// StatsSampler periodically copies platform totals into Prometheus gauges.
// Request paths never read these gauges; dashboards still aggregate at read time.
type StatsSampler struct {
	source   CountsSource
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewStatsSampler constructs a sampler. A non-positive interval disables it.
func NewStatsSampler(source CountsSource, interval time.Duration, logger *slog.Logger) *StatsSampler {
	return &StatsSampler{
		source:   source,
		interval: interval,
		logger:   logger,
	}
}

// Enabled reports whether Start launches a sampling loop.
func (s *StatsSampler) Enabled() bool {
	return s.interval > 0
}

// Start launches background sampling. Calling Start on a running sampler is a no-op.
func (s *StatsSampler) Start(ctx context.Context) {
	if !s.Enabled() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.loop(runCtx)
}

// Stop cancels sampling and waits for the loop to exit.
func (s *StatsSampler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *StatsSampler) loop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sampleAndLog(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sampleAndLog(ctx)
		}
	}
}

func (s *StatsSampler) sampleAndLog(ctx context.Context) {
	if err := s.Sample(ctx); err != nil && ctx.Err() == nil {
		s.logger.Warn("platform stats sample failed", slog.String("error", err.Error()))
	}
}

// Sample reads the current totals once and publishes them.
func (s *StatsSampler) Sample(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, sampleTimeout)
	defer cancel()

	counts, err := s.source.PlatformCounts(ctx)
	if err != nil {
		return err
	}
	platformEntities.WithLabelValues("users").Set(float64(counts.TotalUsers))
	platformEntities.WithLabelValues("stores").Set(float64(counts.TotalStores))
	platformEntities.WithLabelValues("ratings").Set(float64(counts.TotalRatings))
	platformEntities.WithLabelValues("active_users").Set(float64(counts.ActiveUsers))
	return nil
}
