// Package notify delivers user-facing notices. Notices are logged and kept in a bounded
// in-memory buffer so API clients can poll for them.
package notify

import (
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

// Notice is a single message for the user
type Notice struct {
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
}

// Buffer keeps the most recent notices, oldest dropped first
type Buffer struct {
	mu       sync.Mutex
	notices  []Notice
	capacity int
	now      func() time.Time
}

// NewBuffer makes a notice buffer with the given capacity
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 100
	}
	return &Buffer{capacity: capacity, now: time.Now}
}

// Notify records a notice. It never blocks on delivery.
func (b *Buffer) Notify(msg string) {
	lgr.Printf("[WARN] notice: %s", msg)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices = append(b.notices, Notice{Time: b.now(), Message: msg})
	if len(b.notices) > b.capacity {
		b.notices = b.notices[len(b.notices)-b.capacity:]
	}
}

// Recent returns up to limit notices, newest first. Non-positive limit returns all.
func (b *Buffer) Recent(limit int) []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	if limit <= 0 || limit > len(b.notices) {
		limit = len(b.notices)
	}
	res := make([]Notice, 0, limit)
	for i := len(b.notices) - 1; i >= 0 && len(res) < limit; i-- {
		res = append(res, b.notices[i])
	}
	return res
}
