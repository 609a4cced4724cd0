package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marqedonuts/backoffice/internal/redissvc"
)

// Refresh tokens live in redis so a restart does not log everyone out.
// Each token is stored under its own key with a TTL, so expired tokens
// clean themselves up.

const refreshTokenTTL = 7 * 24 * time.Hour

var redisService *redissvc.RedisService

func SetRedisService(rs *redissvc.RedisService) {
	redisService = rs
}

func refreshKey(token string) string {
	return fmt.Sprintf("auth:refresh:%s", token)
}

// ErrRefreshUnavailable is returned when no redis backend is wired and
// refresh sessions cannot be kept.
var ErrRefreshUnavailable = errors.New("refresh token store unavailable")

// StoreRefreshToken associates a refresh token with a username.
func StoreRefreshToken(token, username string) error {
	if redisService == nil {
		return ErrRefreshUnavailable
	}
	rdb := redisService.Rdb()
	return rdb.Set(redisService.Ctx(), refreshKey(token), username, refreshTokenTTL).Err()
}

// LookupRefreshToken returns the username a refresh token was issued to,
// or an empty string if the token is unknown or expired.
func LookupRefreshToken(token string) (string, error) {
	if redisService == nil {
		return "", ErrRefreshUnavailable
	}
	rdb := redisService.Rdb()
	username, err := rdb.Get(redisService.Ctx(), refreshKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return username, nil
}

// RevokeRefreshToken drops a refresh token, ending its session.
func RevokeRefreshToken(token string) error {
	if redisService == nil {
		return nil
	}
	return redisService.Invalidate(refreshKey(token))
}
