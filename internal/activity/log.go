// Package activity tracks what the user has been doing this session.
// The log keeps a bounded window of recent events whose timestamps
// drive focus estimation and whose tokens describe the session to the
// recommendation engine.
package activity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// maxEntries bounds the window of retained events.
const maxEntries = 10

// Entry is a single recorded activity.
type Entry struct {
	At    time.Time
	Token string
}

// Log records session activity. Safe for concurrent use.
type Log struct {
	mu        sync.Mutex
	sessionID string
	startedAt time.Time
	entries   []Entry
	now       func() time.Time
}

// NewLog starts a fresh session log.
func NewLog() *Log {
	return &Log{
		sessionID: uuid.NewString(),
		startedAt: time.Now(),
		now:       time.Now,
	}
}

// SessionID returns the unique id of this session.
func (l *Log) SessionID() string {
	return l.sessionID
}

// Track records an activity token, evicting the oldest entry once the
// window is full.
func (l *Log) Track(token string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, Entry{At: l.now(), Token: token})
	if len(l.entries) > maxEntries {
		l.entries = l.entries[len(l.entries)-maxEntries:]
	}
}

// Recent returns the retained entries, oldest first.
func (l *Log) Recent() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Tokens returns the retained activity tokens, oldest first.
func (l *Log) Tokens() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Token
	}
	return out
}

// Timestamps returns the retained entry times, oldest first.
func (l *Log) Timestamps() []time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]time.Time, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.At
	}
	return out
}

// Duration reports how long this session has been running.
func (l *Log) Duration() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.now().Sub(l.startedAt)
}
