package middleware

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

const msgRateLimited = "слишком много запросов, попробуйте позже"

// DefaultIdleTTL сколько хранится лимитер адреса, от которого нет запросов
const DefaultIdleTTL = 10 * time.Minute

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов с одного адреса.
// Адрес берётся из RemoteAddr. X-Forwarded-For и X-Real-IP учитываются
// только если соединение пришло от доверенного прокси.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time

	rps     rate.Limit
	burst   int
	idleTTL time.Duration
	trusted []netip.Prefix
	now     func() time.Time
	logger  Logger
}

// RateLimiterOption настраивает RateLimiter
type RateLimiterOption func(*RateLimiter)

// WithTrustedProxies задаёт сети прокси, которым разрешено передавать адрес клиента
func WithTrustedProxies(prefixes []netip.Prefix) RateLimiterOption {
	return func(l *RateLimiter) {
		l.trusted = prefixes
	}
}

// WithIdleTTL задаёт время, после которого неактивный адрес забывается
func WithIdleTTL(ttl time.Duration) RateLimiterOption {
	return func(l *RateLimiter) {
		if ttl > 0 {
			l.idleTTL = ttl
		}
	}
}

// NewRateLimiter создает ограничитель: rps запросов в секунду с запасом burst
func NewRateLimiter(rps float64, burst int, logger Logger, opts ...RateLimiterOption) *RateLimiter {
	l := &RateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		idleTTL:  DefaultIdleTTL,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastSweep = l.now()
	return l
}

// ParseTrustedProxies разбирает список адресов и CIDR ("10.0.0.1", "10.0.0.0/8")
func ParseTrustedProxies(values []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if strings.Contains(v, "/") {
			prefix, err := netip.ParsePrefix(v)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", v, err)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(v)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", v, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweep(now)
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep удаляет адреса без запросов дольше idleTTL. Вызывается под mu.
func (l *RateLimiter) sweep(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) >= l.idleTTL {
			delete(l.visitors, key)
		}
	}
	l.lastSweep = now
}

// Middleware отклоняет запросы сверх лимита со статусом 429
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := l.clientIP(r)
		if !l.limiter(ip).Allow() {
			l.logger.Warn("RateLimit: limit exceeded for ip=%s, path=%s", ip, r.URL.Path)
			handlers.RespondTooManyRequests(w, msgRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) clientIP(r *http.Request) string {
	peer := remoteHost(r.RemoteAddr)
	if !l.isTrusted(peer) {
		return peer
	}

	// Идём справа налево: первый недоверенный адрес и есть клиент
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop == "" {
				continue
			}
			if !l.isTrusted(hop) {
				return hop
			}
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	return peer
}

func (l *RateLimiter) isTrusted(host string) bool {
	if len(l.trusted) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range l.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteHost(remoteAddr string) string {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}
