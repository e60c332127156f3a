package logs_uploading

import (
	"logweave/internal/config"
	logs_parsing "logweave/internal/features/logs/parsing"
	"logweave/internal/features/sessions"
	system_resources "logweave/internal/features/system/resources"
	"logweave/internal/util/logger"
	rate_limit "logweave/internal/util/rate_limit"
)

var uploadService = &UploadService{
	sessionRepository: sessions.GetSessionRepository(),
	rateLimiter:       rate_limit.NewRateLimiter(),
	resourceService:   system_resources.GetResourceMonitorService(),
	parser:            logs_parsing.GetParser(),
	maxFiles:          config.GetEnv().MaxUploadFiles,
	maxFileSizeBytes:  config.GetEnv().MaxUploadSizeMb * 1024 * 1024,
	logger:            logger.GetLogger(),
}

var uploadController = &UploadController{
	uploadService,
}

func GetUploadService() *UploadService {
	return uploadService
}

func GetUploadController() *UploadController {
	return uploadController
}

func SetupDependencies() {
	sessions.GetSessionService().AddSessionDeletionListener(uploadService)
}
