package logs_viewing

import (
	logs_timeline "logweave/internal/features/logs/timeline"
	"logweave/internal/features/sessions"
	cache_utils "logweave/internal/util/cache"
	"logweave/internal/util/logger"
)

var viewingService = &ViewingService{
	sessionRepository: sessions.GetSessionRepository(),
	searchCache:       cache_utils.NewDefaultCacheUtil[[]logs_timeline.LogEvent]("search:"),
	logger:            logger.GetLogger(),
}

var viewingController = &ViewingController{
	viewingService,
}

func GetViewingService() *ViewingService {
	return viewingService
}

func GetViewingController() *ViewingController {
	return viewingController
}
