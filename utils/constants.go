package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// VetCachePrefix is the prefix used for cached vet profiles.
const VetCachePrefix = "vet:"

// VetCacheTTL is the time-to-live for cached vet profiles.
const VetCacheTTL = 15 * time.Minute
