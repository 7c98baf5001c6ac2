package middleware

import (
	"context"
	"net/http"
	"strings"

	vetRepo "vetbook/database/repository/vet"
	"vetbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-redis/redis/v8"
)

// JWTAuthVetMiddleware validates the JWT token for vets with Redis caching.
// It sets "vetID" in the gin context on success.
func JWTAuthVetMiddleware(vets vetRepo.VetRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Extract the vet ID from the token.
		vetID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || vetID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Compute the token hash.
		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + computedHash

		// Check the authorization cache.
		authCache := utils.GetAuthCacheClient()
		if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil && cached == "1" {
			// Refresh TTL (sliding expiration) and proceed.
			if err := authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err(); err != nil {
				logger.Error("Failed to refresh auth cache TTL", zap.Error(err))
			}
			c.Set("vetID", vetID)
			c.Next()
			return
		} else if err != nil && err != redis.Nil {
			logger.Error("Error checking auth cache", zap.Error(err))
		}

		// Cache miss: query the vet repository.
		vet, err := vets.GetByID(ctx, vetID)
		if err != nil || vet == nil {
			logger.Error("Vet not found when validating token", zap.String("vetID", vetID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Vet not found"})
			return
		}

		// Validate the token hash.
		if computedHash != vet.TokenHash {
			logger.Error("Token hash mismatch", zap.String("vetID", vetID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		// Successful validation: cache the token hash.
		if err := authCache.Set(ctx, cacheKey, "1", utils.AuthCacheTTL).Err(); err != nil {
			logger.Error("Failed to set auth cache", zap.Error(err))
		}

		c.Set("vetID", vetID)
		c.Next()
	}
}
