package cli

import (
	"sync"
	"time"
	"unicode/utf8"
)

// minSearchChars is the shortest query a live lookup fires for.
const minSearchChars = 2

// Debouncer coalesces keystroke-style triggers into lookups. A lookup fires
// only after the quiet period passes with no further triggers, and at most
// one lookup runs at a time; a trigger arriving mid-lookup is remembered and
// fired once the running one returns, keeping results in order.
type Debouncer struct {
	quiet  time.Duration
	lookup func(query string)

	mu         sync.Mutex
	timer      *time.Timer
	busy       bool
	pending    string
	hasPending bool
}

func NewDebouncer(quiet time.Duration, lookup func(query string)) *Debouncer {
	return &Debouncer{quiet: quiet, lookup: lookup}
}

// Trigger registers a new query. It restarts the quiet timer; queries
// shorter than minSearchChars cancel any scheduled lookup instead.
func (d *Debouncer) Trigger(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if utf8.RuneCountInString(query) < minSearchChars {
		d.hasPending = false
		return
	}
	d.timer = time.AfterFunc(d.quiet, func() { d.start(query) })
}

// Cancel drops any scheduled or queued lookup. A lookup already running is
// allowed to finish.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.hasPending = false
}

func (d *Debouncer) start(query string) {
	d.mu.Lock()
	if d.busy {
		d.pending = query
		d.hasPending = true
		d.mu.Unlock()
		return
	}
	d.busy = true
	d.mu.Unlock()

	go d.run(query)
}

func (d *Debouncer) run(query string) {
	for {
		d.lookup(query)

		d.mu.Lock()
		if !d.hasPending {
			d.busy = false
			d.mu.Unlock()
			return
		}
		query = d.pending
		d.hasPending = false
		d.mu.Unlock()
	}
}
