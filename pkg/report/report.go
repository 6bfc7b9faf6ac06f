package report

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// Report is one recorded hydration check: where it ran, what it
// claimed, and every mismatch diagnostic it emitted.
type Report struct {
	// ID is a unique report identifier.
	ID string `json:"id"`

	// Source names the page or document the check ran against.
	Source string `json:"source,omitempty"`

	// Time is when the check finished.
	Time time.Time `json:"time"`

	// OK is false when the check hit a structural mismatch.
	OK bool `json:"ok"`

	// Claimed is the number of existing nodes matched.
	Claimed int `json:"claimed"`

	// Mismatches holds the emitted diagnostics, in order.
	Mismatches []string `json:"mismatches,omitempty"`
}

// NewID generates a unique report identifier.
func NewID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b) // documented to never fail
	return hex.EncodeToString(b)
}

// Collector accumulates mismatch diagnostics during a hydration pass.
// It implements the hydration diagnostic sink; pass it to the
// Hydrator, run the check, then call Finish to build the report.
type Collector struct {
	mu     sync.Mutex
	source string
	msgs   []string
}

// NewCollector creates a collector for the named source.
func NewCollector(source string) *Collector {
	return &Collector{source: source}
}

// Emit records one diagnostic.
func (c *Collector) Emit(msg string) {
	c.mu.Lock()
	c.msgs = append(c.msgs, msg)
	c.mu.Unlock()
}

// Messages returns the diagnostics recorded so far.
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.msgs...)
}

// Finish builds the report for a completed check.
func (c *Collector) Finish(ok bool, claimed int) *Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &Report{
		ID:         NewID(),
		Source:     c.source,
		Time:       time.Now().UTC(),
		OK:         ok,
		Claimed:    claimed,
		Mismatches: append([]string(nil), c.msgs...),
	}
}
