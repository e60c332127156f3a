package system_resources

import (
	"logweave/internal/config"
	"logweave/internal/util/logger"
)

var resourceMonitorService = &ResourceMonitorService{
	memoryLimitPercent: float64(config.GetEnv().MemoryLimitPercent),
	logger:             logger.GetLogger(),
}

func GetResourceMonitorService() *ResourceMonitorService {
	return resourceMonitorService
}
