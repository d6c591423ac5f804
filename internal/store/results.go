// internal/store/results.go

// Package store holds completed assessment results for the lifetime of the
// process. The log is append-only and volatile; a restart clears it.
package store

import (
	"sync"
	"time"

	"ready-assessment/internal/models"
)

type ResultLog struct {
	mu      sync.Mutex
	entries []models.ResultEntry
}

func NewResultLog() *ResultLog {
	return &ResultLog{}
}

// Append records a completed analysis. Entries keep arrival order.
func (l *ResultLog) Append(username string, result models.Report) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, models.ResultEntry{
		Username:  username,
		Result:    result,
		Timestamp: time.Now().UTC(),
	})
}

// Snapshot returns a copy of the log safe to iterate without holding the
// lock.
func (l *ResultLog) Snapshot() []models.ResultEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.ResultEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *ResultLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
