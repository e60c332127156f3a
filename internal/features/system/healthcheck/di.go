package system_healthcheck

import (
	"logweave/internal/features/sessions"
	system_resources "logweave/internal/features/system/resources"
)

var healthcheckService = &HealthcheckService{
	sessions.GetSessionService(),
	system_resources.GetResourceMonitorService(),
}
var healthcheckController = &HealthcheckController{
	healthcheckService,
}

func GetHealthcheckController() *HealthcheckController {
	return healthcheckController
}
