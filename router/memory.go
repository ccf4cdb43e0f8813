package router

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-memory Router and History. It records every call so tests
// can assert which navigation path fired, and supports configurable latency
// and error injection to exercise transition settlement.
type Memory struct {
	mu         sync.Mutex
	path       string
	latency    time.Duration
	replaceErr error
	replaces   []string
	stateSwaps []string
}

// NewMemory creates a Memory router positioned at path.
func NewMemory(path string) *Memory {
	return &Memory{path: path}
}

// SetLatency makes every Replace take d before settling.
func (m *Memory) SetLatency(d time.Duration) {
	m.mu.Lock()
	m.latency = d
	m.mu.Unlock()
}

// FailReplaceWith makes every subsequent Replace settle with err. The
// visible path is left untouched on failure. Pass nil to restore success.
func (m *Memory) FailReplaceWith(err error) {
	m.mu.Lock()
	m.replaceErr = err
	m.mu.Unlock()
}

// CurrentPath implements Router.
func (m *Memory) CurrentPath() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.path
}

// Replace implements Router. It waits out the configured latency, then
// either fails with the injected error or commits the new path.
func (m *Memory) Replace(ctx context.Context, path string, opts ReplaceOptions) error {
	m.mu.Lock()
	latency := m.latency
	m.mu.Unlock()

	if latency > 0 {
		timer := time.NewTimer(latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.path = path
	m.replaces = append(m.replaces, path)
	return nil
}

// ReplaceState implements History.
func (m *Memory) ReplaceState(path string) {
	m.mu.Lock()
	m.path = path
	m.stateSwaps = append(m.stateSwaps, path)
	m.mu.Unlock()
}

// Replaces returns the paths committed through Replace, oldest first.
func (m *Memory) Replaces() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.replaces...)
}

// StateSwaps returns the paths applied through ReplaceState, oldest first.
func (m *Memory) StateSwaps() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.stateSwaps...)
}
