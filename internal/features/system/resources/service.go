package system_resources

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"logweave/internal/config"

	"github.com/shirou/gopsutil/v4/mem"
)

const sampleInterval = 10 * time.Second

// ResourceMonitorService samples host memory on a ticker and exposes the
// overload flag the upload path consults. Timelines for large uploads live
// entirely in RAM, so ingestion is the pressure source being guarded.
type ResourceMonitorService struct {
	memoryLimitPercent float64
	logger             *slog.Logger

	overloaded      atomic.Bool
	usedPercentBits atomic.Uint64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func (s *ResourceMonitorService) StartWorkers() {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.logger.Info("Starting resource monitor worker",
		slog.Duration("interval", sampleInterval),
		slog.Float64("memoryLimitPercent", s.memoryLimitPercent))

	s.wg.Add(1)
	go s.sampleWorker()
}

func (s *ResourceMonitorService) ExecuteAllTasksForTest() error {
	return s.sampleMemory()
}

// IsOverloaded reports whether host memory usage exceeded the configured
// limit at the last sample.
func (s *ResourceMonitorService) IsOverloaded() bool {
	return s.overloaded.Load()
}

func (s *ResourceMonitorService) MemoryUsedPercent() float64 {
	return math.Float64frombits(s.usedPercentBits.Load())
}

func (s *ResourceMonitorService) sampleWorker() {
	defer s.wg.Done()

	ticker := time.NewTicker(sampleInterval)
	defer ticker.Stop()

	for {
		if config.IsShouldShutdown() {
			s.logger.Info("Resource monitor worker shutting down due to shutdown signal")
			return
		}

		select {
		case <-s.ctx.Done():
			s.logger.Info("Resource monitor worker shutting down")
			return

		case <-ticker.C:
			if err := s.sampleMemory(); err != nil {
				s.logger.Error("Failed to sample host memory", slog.String("error", err.Error()))
			}
		}
	}
}

func (s *ResourceMonitorService) sampleMemory() error {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return err
	}

	s.usedPercentBits.Store(math.Float64bits(vm.UsedPercent))

	overloaded := vm.UsedPercent > s.memoryLimitPercent
	wasOverloaded := s.overloaded.Swap(overloaded)

	if overloaded && !wasOverloaded {
		s.logger.Warn("Host memory above limit, rejecting uploads",
			slog.Float64("usedPercent", vm.UsedPercent),
			slog.Float64("limitPercent", s.memoryLimitPercent))
	}
	if !overloaded && wasOverloaded {
		s.logger.Info("Host memory back under limit, accepting uploads",
			slog.Float64("usedPercent", vm.UsedPercent))
	}

	return nil
}
