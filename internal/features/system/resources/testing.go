package system_resources

// ForceOverloadForTest pins the overload flag without sampling. Safe because
// the sampling worker only runs in the real server process.
func ForceOverloadForTest(overloaded bool) {
	resourceMonitorService.overloaded.Store(overloaded)
}
