package mocks

import (
	"strconv"
	"sync"
	"time"
)

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.At
}

// SequenceIDGenerator returns "<prefix>-1", "<prefix>-2", ...
type SequenceIDGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewSequenceIDGenerator(prefix string) *SequenceIDGenerator {
	return &SequenceIDGenerator{prefix: prefix}
}

func (g *SequenceIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return g.prefix + "-" + strconv.Itoa(g.next)
}

// RecordingMetrics keeps every observation in memory.
type RecordingMetrics struct {
	mu          sync.Mutex
	completed   map[string]int
	failedField map[string]int
}

func NewRecordingMetrics() *RecordingMetrics {
	return &RecordingMetrics{
		completed:   make(map[string]int),
		failedField: make(map[string]int),
	}
}

func (m *RecordingMetrics) CalculationCompleted(kind string, months int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completed[kind]++
}

func (m *RecordingMetrics) ValidationFailed(field string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failedField[field]++
}

// Completed returns the number of successful calculations of a kind.
func (m *RecordingMetrics) Completed(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.completed[kind]
}

// Failed returns the number of validation failures for a field.
func (m *RecordingMetrics) Failed(field string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failedField[field]
}
