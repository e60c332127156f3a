package system_resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SampleMemory_UpdatesUsedPercent(t *testing.T) {
	service := GetResourceMonitorService()

	err := service.ExecuteAllTasksForTest()

	assert.NoError(t, err)
	assert.Greater(t, service.MemoryUsedPercent(), 0.0)
	assert.LessOrEqual(t, service.MemoryUsedPercent(), 100.0)
}

func Test_SampleMemory_GenerousLimit_NotOverloaded(t *testing.T) {
	service := &ResourceMonitorService{
		memoryLimitPercent: 100,
		logger:             GetResourceMonitorService().logger,
	}

	err := service.sampleMemory()

	assert.NoError(t, err)
	assert.False(t, service.IsOverloaded())
}

func Test_SampleMemory_TinyLimit_Overloaded(t *testing.T) {
	service := &ResourceMonitorService{
		memoryLimitPercent: 0.001,
		logger:             GetResourceMonitorService().logger,
	}

	err := service.sampleMemory()

	assert.NoError(t, err)
	assert.True(t, service.IsOverloaded())
}

func Test_SampleMemory_RecoversAfterLimitRaised(t *testing.T) {
	service := &ResourceMonitorService{
		memoryLimitPercent: 0.001,
		logger:             GetResourceMonitorService().logger,
	}

	err := service.sampleMemory()
	assert.NoError(t, err)
	assert.True(t, service.IsOverloaded())

	service.memoryLimitPercent = 100

	err = service.sampleMemory()
	assert.NoError(t, err)
	assert.False(t, service.IsOverloaded())
}

func Test_ForceOverloadForTest_TogglesFlag(t *testing.T) {
	ForceOverloadForTest(true)
	assert.True(t, GetResourceMonitorService().IsOverloaded())

	ForceOverloadForTest(false)
	assert.False(t, GetResourceMonitorService().IsOverloaded())
}
