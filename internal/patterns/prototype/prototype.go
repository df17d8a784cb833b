// Package prototype demonstrates deep-copy snapshots of an order,
// including its metadata map and tag slice.
package prototype

import (
	"time"

	"pattern_lab/internal/domain"
)

// OrderSnapshot is a point-in-time capture of an order plus the mutable
// annotations attached to it.
type OrderSnapshot struct {
	Order    domain.Order      `json:"order"`
	Metadata map[string]string `json:"metadata"`
	Tags     []string          `json:"tags"`
	TakenAt  time.Time         `json:"taken_at"`
}

// NewSnapshot captures the order with its annotations.
func NewSnapshot(order domain.Order, metadata map[string]string, tags []string) *OrderSnapshot {
	snap := &OrderSnapshot{
		Order:    order,
		Metadata: make(map[string]string, len(metadata)),
		Tags:     append([]string(nil), tags...),
		TakenAt:  time.Now(),
	}
	for k, v := range metadata {
		snap.Metadata[k] = v
	}
	return snap
}

// Clone returns a deep copy: mutating the clone's metadata or tags must
// never show through in the original.
func (s *OrderSnapshot) Clone() *OrderSnapshot {
	clone := &OrderSnapshot{
		Order:    s.Order, // value copy; decimal values are immutable
		Metadata: make(map[string]string, len(s.Metadata)),
		Tags:     append([]string(nil), s.Tags...),
		TakenAt:  s.TakenAt,
	}
	for k, v := range s.Metadata {
		clone.Metadata[k] = v
	}
	return clone
}
