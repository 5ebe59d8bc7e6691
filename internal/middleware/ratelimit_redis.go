package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/nyayasetu/backend/internal/audit"
	apperrors "github.com/nyayasetu/backend/internal/errors"
)

const rateLimitWindow = 60 * time.Second

// Sliding-window counter shared across instances. Fails open: when redis is
// unreachable requests pass, since the limiter protects against floods, not
// against single requests.
var rateLimitScript = goredis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

local windowStart = now - window

redis.call('ZREMRANGEBYSCORE', key, '-inf', windowStart)

local count = redis.call('ZCARD', key)

if count >= limit then
    local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
    local resetAt = 0
    if #oldest >= 2 then
        resetAt = tonumber(oldest[2]) + window
    else
        resetAt = now + window
    end
    return {0, 0, resetAt}
end

redis.call('ZADD', key, now, now .. '-' .. math.random())
redis.call('EXPIRE', key, window + 10)

local remaining = limit - count - 1
local resetAt = now + window

return {1, remaining, resetAt}
`)

type RedisRateLimiter struct {
	client *goredis.Client
}

func NewRedisRateLimiter(client *goredis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{client: client}
}

func (rl *RedisRateLimiter) Check(ctx context.Context, key string, limit int) (allowed bool, remaining int, resetAt int64) {
	now := time.Now().Unix()

	result, err := rateLimitScript.Run(ctx, rl.client, []string{key}, now, int64(rateLimitWindow.Seconds()), limit).Int64Slice()
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis rate limit check failed, allowing request")
		return true, limit - 1, now + int64(rateLimitWindow.Seconds())
	}

	if len(result) != 3 {
		log.Warn().Str("key", key).Msg("unexpected redis rate limit result")
		return true, limit - 1, now + int64(rateLimitWindow.Seconds())
	}

	return result[0] == 1, int(result[1]), result[2]
}

// LimitByIP throttles a public endpoint per client address. scope keeps the
// buckets of different endpoints apart.
func (rl *RedisRateLimiter) LimitByIP(scope string, limit int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
				ip = forwarded
			}

			key := fmt.Sprintf("ratelimit:%s:%s", scope, ip)
			rl.serve(w, r, next, key, limit)
		})
	}
}

// LimitByLawyer throttles an authenticated endpoint per lawyer. Must run
// after the auth middleware.
func (rl *RedisRateLimiter) LimitByLawyer(scope string, limit int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaims(r.Context())
			if claims == nil {
				next.ServeHTTP(w, r)
				return
			}

			key := fmt.Sprintf("ratelimit:%s:%d", scope, claims.LawyerID)
			rl.serve(w, r, next, key, limit)
		})
	}
}

func (rl *RedisRateLimiter) serve(w http.ResponseWriter, r *http.Request, next http.Handler, key string, limit int) {
	allowed, remaining, resetAt := rl.Check(r.Context(), key, limit)

	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt, 10))

	if !allowed {
		audit.LogFromRequest(r, audit.Event{Type: audit.EventRateLimitExceed, Details: map[string]interface{}{"key": key}})
		w.Header().Set("Retry-After", "60")
		writeError(w, apperrors.RateLimitExceeded())
		return
	}

	next.ServeHTTP(w, r)
}
