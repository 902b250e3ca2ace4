package middleware

import (
	"errors"
	"net"
	"net/http"
	"rimbest/shared"
	"rimbest/shared/cache"
	"rimbest/shared/constant"
	"rimbest/transport/http/response"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"

	defaultWindowSeconds = 60
)

// RateLimit counts requests per client in fixed windows stored in redis.
// The window start is part of the key, so a busy client cannot stretch its
// own window by saving again. Redis errors let the request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			if windowSecs <= 0 {
				windowSecs = defaultWindowSeconds
			}

			now := time.Now().Unix()
			windowStart := now - now%int64(windowSecs)
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r), strconv.FormatInt(windowStart, 10))

			var count int

			err := a.cache.Get(r.Context(), cacheKey, &count)
			if err != nil && !errors.Is(err, cache.Nil) {
				log.Warn().Err(err).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)

				return
			}

			count++

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			if count > maxReqs {
				w.Header().Set("Retry-After", strconv.FormatInt(windowStart+int64(windowSecs)-now, 10))
				response.WithRequestLimitExceeded(w)

				return
			}

			if err = a.cache.Save(r.Context(), cacheKey, count, windowSecs); err != nil {
				log.Warn().Err(err).Msg("failed to record request count")
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

// getClientIP prefers proxy headers, first X-Forwarded-For then X-Real-IP.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
