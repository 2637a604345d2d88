package middleware

import (
	"fmt"
	"net"
	"net/http"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/philly/inkwell/internal/platform/apperror"
	"github.com/philly/inkwell/internal/platform/logger"
)

var ErrRateLimited = apperror.New(
	apperror.CodeTooManyRequests,
	apperror.BusinessCodeRateLimited,
	"too many requests, slow down",
	http.StatusTooManyRequests,
)

type RateLimitConfig struct {
	// RPS <= 0 disables limiting.
	RPS   float64
	Burst int
	// MaxClients bounds how many per-IP limiters are remembered.
	MaxClients int
}

// RateLimiter throttles mutating requests with one token bucket per client IP.
// Reads are never limited.
type RateLimiter struct {
	clients *lru.Cache[string, *rate.Limiter]
	limit   rate.Limit
	burst   int
	logger  logger.Logger
}

func NewRateLimiter(cfg RateLimitConfig, logger logger.Logger) (*RateLimiter, error) {
	if cfg.MaxClients <= 0 {
		cfg.MaxClients = 10000
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	clients, err := lru.New[string, *rate.Limiter](cfg.MaxClients)
	if err != nil {
		return nil, fmt.Errorf("create limiter store: %w", err)
	}
	return &RateLimiter{
		clients: clients,
		limit:   rate.Limit(cfg.RPS),
		burst:   cfg.Burst,
		logger:  logger,
	}, nil
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.limit <= 0 || !mutating(r.Method) {
			next.ServeHTTP(w, r)
			return
		}
		ip := clientIP(r)
		if !l.limiter(ip).Allow() {
			l.logger.Warn(r.Context(), "rate limit exceeded", "remote_ip", ip, "path", r.URL.Path)
			WriteAppError(w, ErrRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) limiter(ip string) *rate.Limiter {
	if lim, ok := l.clients.Get(ip); ok {
		return lim
	}
	lim := rate.NewLimiter(l.limit, l.burst)
	if prev, ok, _ := l.clients.PeekOrAdd(ip, lim); ok {
		return prev
	}
	return lim
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// clientIP expects chi's RealIP to have run first.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
