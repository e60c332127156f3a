package system_healthcheck

import (
	"fmt"
	"runtime"

	"logweave/internal/features/sessions"
	system_resources "logweave/internal/features/system/resources"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
)

type HealthcheckService struct {
	sessionService  *sessions.SessionService
	resourceService *system_resources.ResourceMonitorService
}

func (s *HealthcheckService) GetHealth() (*HealthResponseDTO, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to read memory stats: %w", err)
	}

	// CPU and uptime are informational, a read failure should not take the
	// whole healthcheck down.
	uptimeSeconds, err := host.Uptime()
	if err != nil {
		uptimeSeconds = 0
	}

	cpuPercent := 0.0
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		cpuPercent = percents[0]
	}

	status := statusOK
	if s.resourceService.IsOverloaded() {
		status = statusDegraded
	}

	return &HealthResponseDTO{
		Status:            status,
		UptimeSeconds:     uptimeSeconds,
		MemoryUsedPercent: vm.UsedPercent,
		MemoryTotalMb:     vm.Total / 1024 / 1024,
		CPUPercent:        cpuPercent,
		Goroutines:        runtime.NumGoroutine(),
		ActiveSessions:    s.sessionService.CountSessions(),
	}, nil
}
