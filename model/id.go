package model

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator issues process-unique block identifiers. Implementations must
// be safe for concurrent use and must never return the same identifier
// twice within a process; no ordering guarantee is required.
type IDGenerator interface {
	// NextID returns a fresh identifier carrying the given prefix.
	NextID(prefix string) string
}

// UUIDGenerator issues random UUID-backed identifiers. It is the default
// generator used by block constructors in production code.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a UUID-backed identifier generator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NextID returns "prefix-<uuid>", or a bare UUID when prefix is empty.
func (g *UUIDGenerator) NextID(prefix string) string {
	if prefix == "" {
		return uuid.NewString()
	}
	return prefix + "-" + uuid.NewString()
}

// SequentialGenerator issues deterministic incrementing identifiers. It is
// intended for tests, where stable identifiers make assertions simple.
type SequentialGenerator struct {
	counter uint64
}

// NewSequentialGenerator creates a sequential identifier generator starting
// at 1.
func NewSequentialGenerator() *SequentialGenerator {
	return &SequentialGenerator{}
}

// NextID returns "prefix-N" for an atomically incremented N.
func (g *SequentialGenerator) NextID(prefix string) string {
	n := atomic.AddUint64(&g.counter, 1)
	if prefix == "" {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s-%d", prefix, n)
}
