package router

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemory_Replace(t *testing.T) {
	m := NewMemory("/dashboard")

	if err := m.Replace(context.Background(), "/dashboard?from=x", ReplaceOptions{}); err != nil {
		t.Fatalf("Replace() error: %v", err)
	}
	if got := m.CurrentPath(); got != "/dashboard?from=x" {
		t.Errorf("CurrentPath() = %q", got)
	}
	if got := m.Replaces(); len(got) != 1 || got[0] != "/dashboard?from=x" {
		t.Errorf("Replaces() = %v", got)
	}
}

func TestMemory_ReplaceFailureKeepsPath(t *testing.T) {
	m := NewMemory("/dashboard")
	injected := errors.New("boom")
	m.FailReplaceWith(injected)

	if err := m.Replace(context.Background(), "/new", ReplaceOptions{}); !errors.Is(err, injected) {
		t.Fatalf("Replace() error = %v, want injected", err)
	}
	if m.CurrentPath() != "/dashboard" {
		t.Error("failed replace should not move the path")
	}
	if len(m.Replaces()) != 0 {
		t.Error("failed replace should not be recorded")
	}
}

func TestMemory_ReplaceCancelledDuringLatency(t *testing.T) {
	m := NewMemory("/dashboard")
	m.SetLatency(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- m.Replace(ctx, "/new", ReplaceOptions{})
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Replace() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Replace did not honor cancellation")
	}
	if m.CurrentPath() != "/dashboard" {
		t.Error("cancelled replace should not move the path")
	}
}

func TestMemory_ReplaceState(t *testing.T) {
	m := NewMemory("/dashboard")
	m.ReplaceState("/dashboard?from=cached")

	if m.CurrentPath() != "/dashboard?from=cached" {
		t.Errorf("CurrentPath() = %q", m.CurrentPath())
	}
	if swaps := m.StateSwaps(); len(swaps) != 1 {
		t.Errorf("StateSwaps() = %v", swaps)
	}
	if len(m.Replaces()) != 0 {
		t.Error("ReplaceState must not count as a navigation")
	}
}
