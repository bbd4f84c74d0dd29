package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxResolveGuard is used for prefixing the purchase continuation guard
	PfxResolveGuard = "resolveGuard"
	// PfxMarketplaceConfig is used for prefixing cached marketplace config
	PfxMarketplaceConfig = "marketplaceConfig"
)

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return strings.Join(components, ":")
}

// GetPrefix extracts the prefix of a key, used as a metrics tag.
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join([]string{s[0], s[1]}, ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}
