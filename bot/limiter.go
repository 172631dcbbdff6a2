/* limiter.go
 * Contains a per-user token bucket limiter so one user cannot spam the
 * command router. Commands over the limit are dropped silently.
 */

package bot

import (
	"sync"

	"golang.org/x/time/rate"
)

// commandLimiter manages per-user rate limiting.
// Each unique user ID gets its own independent limiter.
type commandLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// newCommandLimiter creates a limiter allowing rps commands per second per
// user with the given burst.
func newCommandLimiter(rps float64, burst int) *commandLimiter {
	return &commandLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

// Allow reports whether a command from the given user should be handled.
// Returns immediately without blocking.
func (cl *commandLimiter) Allow(userID string) bool {
	cl.mu.Lock()
	limiter, ok := cl.limiters[userID]
	if !ok {
		limiter = rate.NewLimiter(cl.limit, cl.burst)
		cl.limiters[userID] = limiter
	}
	cl.mu.Unlock()

	return limiter.Allow()
}
