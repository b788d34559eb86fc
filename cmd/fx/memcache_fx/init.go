package memcache_fx

import (
	"go.uber.org/fx"

	mem "fitlead/pkg/memcache"
)

var Module = fx.Provide(provideSessionCache)

func provideSessionCache() *mem.SessionCache {
	return mem.NewSessionCache()
}
