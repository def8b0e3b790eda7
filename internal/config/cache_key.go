package config

import "fmt"

// CacheKeyStruct namespaces all Redis key builders.
type CacheKeyStruct struct{}

// CacheKey is the shared Redis key builder.
var CacheKey CacheKeyStruct

// AuthTokenKey returns the cache key for a resolved bearer token.
func (CacheKeyStruct) AuthTokenKey(token string) string {
	return fmt.Sprintf("gradekeep:auth:token:%s", token)
}
