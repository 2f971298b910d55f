// Package goroutine launches background work that must not crash the process.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/vpndash/vpndash/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine and logs a panic with its stack instead of crashing.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer recoverAndLog(log, name)
		fn()
	}()
}

func recoverAndLog(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("goroutine panicked",
			"goroutine", name,
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}

// Group tracks goroutines started with Go so shutdown can wait for them.
type Group struct {
	wg  sync.WaitGroup
	log logger.Interface
}

func NewGroup(log logger.Interface) *Group {
	return &Group{log: log}
}

// Go behaves like SafeGo and counts fn as in flight until it returns or panics.
func (g *Group) Go(name string, fn func()) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer recoverAndLog(g.log, name)
		fn()
	}()
}

// Wait blocks until every goroutine started with Go has finished or ctx is done.
func (g *Group) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
