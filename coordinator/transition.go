package coordinator

import (
	"context"
	"fmt"
	"sync"
)

// transition models the interruptible navigation primitive: at most one
// replace in flight, a newer begin cancels and supersedes the older one.
// The settled callback always fires when fn returns, reporting whether a
// newer transition began in the meantime; supersession is what keeps a
// stale settlement from clearing a newer pending delta.
//
// begin and run are split so the caller can register the new generation
// before publishing its pending delta: any older transition settling in
// between already observes itself superseded and leaves the fresh delta
// alone.
type transition struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// transitionToken identifies one begun transition until run consumes it.
type transitionToken struct {
	gen    uint64
	ctx    context.Context
	cancel context.CancelFunc
}

func (t *transition) begin() transitionToken {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.gen++
	return transitionToken{gen: t.gen, ctx: ctx, cancel: cancel}
}

func (t *transition) run(tok transitionToken, fn func(context.Context) error, settled func(err error, superseded bool)) {
	go func() {
		var err error
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("transition panic: %v", r)
			}
			t.mu.Lock()
			superseded := tok.gen != t.gen
			if !superseded {
				t.cancel = nil
			}
			t.mu.Unlock()
			tok.cancel()
			settled(err, superseded)
		}()
		err = fn(tok.ctx)
	}()
}

func (t *transition) inFlight() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}
