package server

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"mananciall/internal/util"
)

// withRateLimit counts each API request against the caller's IP. Limiter
// failures deny the request.
func (s *Server) withRateLimit(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter == nil || r.Method == http.MethodOptions {
			next(w, r)
			return
		}
		ip := util.ClientIP(r, s.trustedProxies)
		decision, err := s.limiter.Allow(r.Context(), ip)
		if err != nil {
			util.LoggerFromContext(r.Context()).Error("rate limiter unavailable", "client_ip", ip, "err", err)
		}
		if decision.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		}
		if !decision.Allowed {
			retry := int(math.Ceil(time.Until(decision.ResetAt).Seconds()))
			if retry < 1 {
				retry = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			writeError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next(w, r)
	})
}
