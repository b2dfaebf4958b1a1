package redis

import (
	"usecase-srv/internal/transcript/repository"
	"usecase-srv/pkg/log"
	pkgRedis "usecase-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
