package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	rateLimitClientTTL       = 10 * time.Minute
	rateLimitCleanupInterval = time.Minute
)

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientRegistry holds one token bucket per client IP and evicts buckets
// idle past the TTL so the map stays bounded under IP churn.
type clientRegistry struct {
	mu      sync.Mutex
	clients map[string]*rateLimitClient
	rps     rate.Limit
	burst   int
}

func newClientRegistry(rps rate.Limit, burst int) *clientRegistry {
	return &clientRegistry{
		clients: make(map[string]*rateLimitClient),
		rps:     rps,
		burst:   burst,
	}
}

func (reg *clientRegistry) allow(ip string) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	client, ok := reg.clients[ip]
	if !ok {
		client = &rateLimitClient{limiter: rate.NewLimiter(reg.rps, reg.burst)}
		reg.clients[ip] = client
	}
	client.lastSeen = time.Now()
	return client.limiter.Allow()
}

func (reg *clientRegistry) sweep(ttl time.Duration) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	for ip, client := range reg.clients {
		if time.Since(client.lastSeen) > ttl {
			delete(reg.clients, ip)
		}
	}
}

func (reg *clientRegistry) size() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.clients)
}

// RateLimit applies a per-client token bucket keyed by remote IP. A
// background routine sweeps clients idle past the TTL and stops when ctx
// is cancelled.
func RateLimit(ctx context.Context, rps rate.Limit, burst int) gin.HandlerFunc {
	registry := newClientRegistry(rps, burst)

	go func() {
		ticker := time.NewTicker(rateLimitCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				registry.sweep(rateLimitClientTTL)
			case <-ctx.Done():
				return
			}
		}
	}()

	return func(c *gin.Context) {
		ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
		if err != nil {
			ip = c.Request.RemoteAddr
		}
		if !registry.allow(ip) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
