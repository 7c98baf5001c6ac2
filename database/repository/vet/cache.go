// File: database/repository/vet/cache.go
package vetRepo

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"vetbook/models"
	"vetbook/utils"
)

// Vet profiles are small and read on nearly every scheduling call (timezone
// and notice period), so they sit behind a redis read-through cache.

func cachedVet(ctx context.Context, id string) *models.Vet {
	cache := utils.GetCacheClient()
	raw, err := cache.Get(ctx, utils.VetCachePrefix+id).Result()
	if err != nil {
		return nil
	}
	var vet models.Vet
	if err := json.Unmarshal([]byte(raw), &vet); err != nil {
		zap.L().Warn("Failed to decode cached vet profile", zap.String("vetID", id), zap.Error(err))
		return nil
	}
	return &vet
}

func cacheVet(ctx context.Context, vet *models.Vet) {
	cache := utils.GetCacheClient()
	raw, err := json.Marshal(vet)
	if err != nil {
		return
	}
	if err := cache.Set(ctx, utils.VetCachePrefix+vet.ID, raw, utils.VetCacheTTL).Err(); err != nil {
		zap.L().Warn("Failed to cache vet profile", zap.String("vetID", vet.ID), zap.Error(err))
	}
}

func invalidateVet(ctx context.Context, id string) {
	cache := utils.GetCacheClient()
	if err := cache.Del(ctx, utils.VetCachePrefix+id).Err(); err != nil {
		zap.L().Warn("Failed to invalidate cached vet profile", zap.String("vetID", id), zap.Error(err))
	}
}
