package middlewares

import (
	"chaipoint-service/internal/pkg/constvars"
	"chaipoint-service/internal/pkg/dto/responses"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter      *rate.Limiter
	blockedUntil time.Time
	lastSeen     time.Time
}

// RateLimiter throttles order placement per client IP. An IP that exhausts
// its budget is put on a cooldown instead of being allowed to retry on every
// token refill.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	budget   int
	per      time.Duration
	cooldown time.Duration
}

func NewRateLimiter(budget int, per, cooldown time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		budget:   budget,
		per:      per,
		cooldown: cooldown,
	}
	go rl.pruneLoop()
	return rl
}

// pruneLoop drops visitors idle long enough that their bucket is full again,
// so the map does not grow with every IP the hostel NAT ever hands out.
func (rl *RateLimiter) pruneLoop() {
	ticker := time.NewTicker(rl.per)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-(rl.per + rl.cooldown))
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if v.lastSeen.Before(cutoff) {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) visitorFor(ip string, now time.Time) *visitor {
	v, ok := rl.visitors[ip]
	if !ok {
		interval := rl.per
		if rl.budget > 0 {
			interval = rl.per / time.Duration(rl.budget)
		}
		v = &visitor{limiter: rate.NewLimiter(rate.Every(interval), rl.budget)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		now := time.Now()

		rl.mu.Lock()
		v := rl.visitorFor(ip, now)
		if now.Before(v.blockedUntil) {
			rl.mu.Unlock()
			writeTooManyRequests(w)
			return
		}
		allowed := v.limiter.Allow()
		if !allowed {
			v.blockedUntil = now.Add(rl.cooldown)
		}
		rl.mu.Unlock()

		if !allowed {
			writeTooManyRequests(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeTooManyRequests(w http.ResponseWriter) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(responses.ResponseDTO{
		Success: false,
		Message: "Too many orders placed, please slow down.",
	})
}
