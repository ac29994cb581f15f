package ratelimit

import (
	"encoding/json"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bnema/swapaudio/internal/infrastructure/logger"
)

type requestRecord struct {
	Count        int
	WindowStart  time.Time
	BlockedUntil time.Time
}

// ClientLimiter caps how many requests one client may start per window.
// A client going over the cap is blocked for blockDuration.
type ClientLimiter struct {
	mu             sync.Mutex
	records        map[string]*requestRecord
	maxRequests    int
	windowDuration time.Duration
	blockDuration  time.Duration
	now            func() time.Time
	done           chan struct{}
	closeOnce      sync.Once
}

func NewClientLimiter(maxRequests int, windowDuration, blockDuration time.Duration) *ClientLimiter {
	limiter := &ClientLimiter{
		records:        make(map[string]*requestRecord),
		maxRequests:    maxRequests,
		windowDuration: windowDuration,
		blockDuration:  blockDuration,
		now:            time.Now,
		done:           make(chan struct{}),
	}

	go limiter.cleanupLoop(time.Minute)

	return limiter
}

// Check records one request from clientID. When it is refused, the second
// value says how long the client has to wait.
func (l *ClientLimiter) Check(clientID string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	record, ok := l.records[clientID]
	if !ok {
		record = &requestRecord{WindowStart: now}
		l.records[clientID] = record
	}

	if now.Before(record.BlockedUntil) {
		return false, record.BlockedUntil.Sub(now)
	}

	if now.Sub(record.WindowStart) >= l.windowDuration {
		record.Count = 0
		record.WindowStart = now
	}

	record.Count++
	if record.Count > l.maxRequests {
		record.BlockedUntil = now.Add(l.blockDuration)
		return false, l.blockDuration
	}

	return true, 0
}

func (l *ClientLimiter) Close() {
	l.closeOnce.Do(func() { close(l.done) })
}

func (l *ClientLimiter) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.cleanup()
		}
	}
}

func (l *ClientLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for clientID, record := range l.records {
		if now.Sub(record.WindowStart) > l.windowDuration*2 && now.After(record.BlockedUntil) {
			delete(l.records, clientID)
		}
	}
}

// Middleware answers 429 with Retry-After once a client is over its cap.
func (l *ClientLimiter) Middleware(next http.Handler, behindProxy bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := ClientID(r, behindProxy)
		allowed, wait := l.Check(clientID)
		if !allowed {
			logger.Warn.Printf("rate limit: %s blocked for %s", logger.SanitizeForLog(clientID), wait.Round(time.Second))
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Too many requests, try again later"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientID identifies the caller by IP. Behind a reverse proxy the left-most
// X-Forwarded-For entry is used.
func ClientID(r *http.Request, behindProxy bool) string {
	if behindProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
