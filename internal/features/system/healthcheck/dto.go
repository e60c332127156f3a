package system_healthcheck

type HealthResponseDTO struct {
	Status            string  `json:"status"`
	UptimeSeconds     uint64  `json:"uptimeSeconds"`
	MemoryUsedPercent float64 `json:"memoryUsedPercent"`
	MemoryTotalMb     uint64  `json:"memoryTotalMb"`
	CPUPercent        float64 `json:"cpuPercent"`
	Goroutines        int     `json:"goroutines"`
	ActiveSessions    int     `json:"activeSessions"`
}
