package command

import (
	"sync"
	"time"
)

// AuditAction tags one audited step of a command's life.
type AuditAction string

const (
	ActionExecute   AuditAction = "EXECUTE"
	ActionSuccess   AuditAction = "SUCCESS"
	ActionFailed    AuditAction = "FAILED"
	ActionException AuditAction = "EXCEPTION"
	ActionQueued    AuditAction = "QUEUED"
)

// AuditEntry records one command-execution attempt and its outcome.
type AuditEntry struct {
	CommandID  string        `json:"command_id"`
	Command    string        `json:"command"`
	Action     AuditAction   `json:"action"`
	Timestamp  time.Time     `json:"timestamp"`
	RetryCount int           `json:"retry_count"`
	Duration   time.Duration `json:"duration,omitempty"`
	Detail     string        `json:"detail,omitempty"`
}

// AuditLog is an append-only sequence under a single lock. It is never
// rotated or size-bounded; it grows for the life of the process.
type AuditLog struct {
	mu      sync.Mutex
	entries []AuditEntry
}

// NewAuditLog creates an empty log.
func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

// Append records one entry, stamping the time.
func (l *AuditLog) Append(e AuditEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.Timestamp = time.Now()
	l.entries = append(l.entries, e)
}

// Entries returns a copy of the full log.
func (l *AuditLog) Entries() []AuditEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]AuditEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// ForCommand returns entries for one command id, in append order.
func (l *AuditLog) ForCommand(commandID string) []AuditEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []AuditEntry
	for _, e := range l.entries {
		if e.CommandID == commandID {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of entries.
func (l *AuditLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
