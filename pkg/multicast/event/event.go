// Package event provides a small payload model for multicast callbacks.
//
// Data is the root of the payload hierarchy: a callback parameterized by
// Data accepts every payload, while a callback parameterized by a concrete
// implementation accepts only that payload. The multicast adapters verify
// this contravariant relationship when converting between the two shapes.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Data is the interface every event payload implements. Payloads are
// immutable once created.
type Data interface {
	// Meta returns the payload's identifying metadata.
	Meta() Metadata
}

// Metadata identifies one occurrence of an event.
type Metadata struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

// Base is the canonical Data implementation, intended for embedding in
// concrete payload types:
//
//	type OrderPlaced struct {
//	    event.Base
//	    OrderID string
//	}
type Base struct {
	Metadata Metadata `json:"metadata"`
}

// Meta implements Data.
func (b *Base) Meta() Metadata {
	return b.Metadata
}

// Option configures event creation.
type Option func(*Metadata)

// WithID sets a specific event ID (default: auto-generated UUID).
func WithID(id string) Option {
	return func(m *Metadata) {
		m.ID = id
	}
}

// WithTimestamp sets a specific timestamp (default: time.Now()).
func WithTimestamp(t time.Time) Option {
	return func(m *Metadata) {
		m.Timestamp = t
	}
}

// NewBase creates the Base for a new event occurrence with the given type
// and source.
func NewBase(eventType, source string, opts ...Option) Base {
	m := Metadata{
		ID:        uuid.NewString(),
		Type:      eventType,
		Source:    source,
		Timestamp: time.Now(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return Base{Metadata: m}
}
