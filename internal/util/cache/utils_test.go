package cache_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CacheUtil_SetThenGet_ReturnsStoredItem(t *testing.T) {
	cache := NewDefaultCacheUtil[string]("test-roundtrip:")

	value := "cached payload"
	cache.Set("key", &value)
	cache.Wait()

	stored := cache.Get("key")
	if assert.NotNil(t, stored) {
		assert.Equal(t, "cached payload", *stored)
	}
}

func Test_CacheUtil_GetMissingKey_ReturnsNil(t *testing.T) {
	cache := NewDefaultCacheUtil[string]("test-miss:")

	assert.Nil(t, cache.Get("never-set"))
}

func Test_CacheUtil_DifferentPrefixes_DoNotCollide(t *testing.T) {
	first := NewDefaultCacheUtil[string]("test-first:")
	second := NewDefaultCacheUtil[string]("test-second:")

	value := "only in first"
	first.Set("shared-key", &value)
	first.Wait()

	assert.NotNil(t, first.Get("shared-key"))
	assert.Nil(t, second.Get("shared-key"))
}

func Test_CacheUtil_Invalidate_RemovesEntry(t *testing.T) {
	cache := NewDefaultCacheUtil[string]("test-invalidate:")

	value := "short lived"
	cache.Set("key", &value)
	cache.Wait()
	assert.NotNil(t, cache.Get("key"))

	cache.Invalidate("key")
	cache.Wait()

	assert.Nil(t, cache.Get("key"))
}

func Test_CacheUtil_SliceValues_RoundTripByPointer(t *testing.T) {
	cache := NewDefaultCacheUtil[[]int]("test-slice:")

	values := []int{1, 2, 3}
	cache.Set("numbers", &values)
	cache.Wait()

	stored := cache.Get("numbers")
	if assert.NotNil(t, stored) {
		assert.Equal(t, []int{1, 2, 3}, *stored)
	}
}
