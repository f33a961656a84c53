package frameprovider

import (
	"sync"
	"time"
)

// pacer enforces a minimum spacing between serves. Callers arriving
// sooner than one delay interval after the previous serve are
// suspended for the whole interval, not the remainder. That matches
// the "at least one full interval between any two fast arrivals"
// contract and accumulates drift under sustained load, it is not a
// strict periodic scheduler.
type pacer struct {
	delay   time.Duration
	mu      sync.Mutex
	lastGet time.Time
}

// newPacer derives the inter-frame delay from the max rate using
// whole milliseconds. Rates above 1000fps round the delay down to
// zero which disables pacing entirely.
func newPacer(maxFPS int) pacer {
	return pacer{
		delay:   time.Duration(1000/maxFPS) * time.Millisecond,
		lastGet: time.Now(),
	}
}

func (p *pacer) wait() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if time.Since(p.lastGet) < p.delay {
		sleep(p.delay)
	}
	p.lastGet = time.Now()
}

var sleep = time.Sleep
