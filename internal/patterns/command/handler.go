package command

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pattern_lab/internal/infra"
)

const maxAttempts = 3

// Handler executes commands with bounded retry and linear backoff,
// auditing every attempt. Queued commands are held FIFO; nothing
// dequeues automatically, draining is left to the caller.
type Handler struct {
	audit *AuditLog

	mu    sync.Mutex
	queue []Command
}

// NewHandler creates a handler writing to the given audit log.
func NewHandler(audit *AuditLog) *Handler {
	return &Handler{audit: audit}
}

// Execute runs the command with up to maxAttempts tries. Reported
// failures and errors both consume the retry budget; waits are linear
// (attempt × 100ms) and context-aware. After exhaustion the last
// failure comes back as a Result; errors never escape as panics.
func (h *Handler) Execute(ctx context.Context, cmd Command) Result {
	var last Result

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		retries := attempt - 1

		h.audit.Append(AuditEntry{
			CommandID:  cmd.ID(),
			Command:    cmd.Name(),
			Action:     ActionExecute,
			RetryCount: retries,
		})

		start := time.Now()
		result, err := runCommand(ctx, cmd)
		elapsed := time.Since(start)

		if err != nil {
			h.audit.Append(AuditEntry{
				CommandID:  cmd.ID(),
				Command:    cmd.Name(),
				Action:     ActionException,
				RetryCount: retries,
				Duration:   elapsed,
				Detail:     err.Error(),
			})
			slog.Warn("command raised error",
				slog.String("command", cmd.Name()),
				slog.Int("attempt", attempt),
				slog.Any("error", err))
			last = Result{
				Success: false,
				Message: fmt.Sprintf("command %s failed: %v", cmd.Name(), err),
			}
		} else if !result.Success {
			h.audit.Append(AuditEntry{
				CommandID:  cmd.ID(),
				Command:    cmd.Name(),
				Action:     ActionFailed,
				RetryCount: retries,
				Duration:   elapsed,
				Detail:     result.Message,
			})
			last = result
		} else {
			h.audit.Append(AuditEntry{
				CommandID:  cmd.ID(),
				Command:    cmd.Name(),
				Action:     ActionSuccess,
				RetryCount: retries,
				Duration:   elapsed,
			})
			return result
		}

		if attempt < maxAttempts {
			if err := infra.SleepContext(ctx, infra.LinearBackoff(attempt)); err != nil {
				last.Message = fmt.Sprintf("%s (retry aborted: %v)", last.Message, err)
				return last
			}
		}
	}

	return last
}

// runCommand converts a panicking command into an error so one bad
// command cannot take down the handler.
func runCommand(ctx context.Context, cmd Command) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("command %s panicked: %v", cmd.Name(), r)
		}
	}()
	return cmd.Execute(ctx)
}

// Queue places the command on the FIFO queue and audits it as QUEUED.
func (h *Handler) Queue(cmd Command) {
	h.mu.Lock()
	h.queue = append(h.queue, cmd)
	h.mu.Unlock()

	h.audit.Append(AuditEntry{
		CommandID: cmd.ID(),
		Command:   cmd.Name(),
		Action:    ActionQueued,
	})
	slog.Info("command queued", slog.String("command", cmd.Name()), slog.String("id", cmd.ID()))
}

// QueuedCount returns the number of commands waiting.
func (h *Handler) QueuedCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.queue)
}

// PendingCommands returns the queued command names in FIFO order.
func (h *Handler) PendingCommands() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.queue))
	for i, cmd := range h.queue {
		out[i] = cmd.Name()
	}
	return out
}

// Audit exposes the audit log for inspection.
func (h *Handler) Audit() *AuditLog { return h.audit }
