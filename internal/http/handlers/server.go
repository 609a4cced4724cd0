package handlers

import (
	"time"

	"github.com/marqedonuts/backoffice/internal/backoffice"
	"github.com/marqedonuts/backoffice/internal/redissvc"
	"github.com/marqedonuts/backoffice/internal/repo"
	"github.com/marqedonuts/backoffice/internal/report"
)

var (
	svc      *backoffice.Service
	userRepo repo.UserRepository

	redisService     *redissvc.RedisService
	overviewCacheTTL = 30 * time.Second

	shopTZ = time.UTC
)

func SetService(s *backoffice.Service) {
	svc = s
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetRedisService(rs *redissvc.RedisService) {
	redisService = rs
}

func SetOverviewCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		overviewCacheTTL = ttl
	}
}

// SetTimezone fixes the reference zone the dashboard's "today" is
// evaluated in.
func SetTimezone(loc *time.Location) {
	if loc != nil {
		shopTZ = loc
	}
}

func dayBounds() (time.Time, time.Time) {
	return report.DayBounds(time.Now(), shopTZ)
}

const overviewCacheKey = "dashboard:overview"

// invalidateOverview drops the cached dashboard after any write. The
// aggregation itself never caches; this is purely a transport-level
// cache with explicit invalidation.
func invalidateOverview() {
	if redisService != nil {
		_ = redisService.Invalidate(overviewCacheKey)
	}
}
