package auth

import (
	"sync"
	"time"
)

const (
	maxLoginAttempts = 5
	loginWindow      = 15 * time.Minute
)

type attemptEntry struct {
	count      int
	windowFrom time.Time // first attempt in the current window
}

// LoginLimiter is a process-local fixed-window counter keyed by
// "clientIP:email". The window is measured from the first attempt, not per
// request, and the counter only resets once that window elapses. Every
// attempt counts, successful logins included. Not shared across instances;
// horizontal scaling fragments the limit per process.
type LoginLimiter struct {
	mu      sync.Mutex
	entries map[string]*attemptEntry
	now     func() time.Time
}

func NewLoginLimiter() *LoginLimiter {
	return &LoginLimiter{
		entries: make(map[string]*attemptEntry),
		now:     time.Now,
	}
}

// Allow records one attempt for key and reports whether it is still inside
// the budget. The sixth attempt within the window is rejected.
func (l *LoginLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	e, ok := l.entries[key]
	if !ok || now.Sub(e.windowFrom) >= loginWindow {
		l.entries[key] = &attemptEntry{count: 1, windowFrom: now}
		return true
	}

	e.count++
	return e.count <= maxLoginAttempts
}

// prune drops entries whose window has elapsed so the map does not grow
// without bound. Caller must hold the lock.
func (l *LoginLimiter) prune(now time.Time) {
	for key, e := range l.entries {
		if now.Sub(e.windowFrom) >= loginWindow {
			delete(l.entries, key)
		}
	}
}
