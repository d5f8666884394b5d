package services

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is the debounce quiet period used when none is
// configured.
const DefaultQuietPeriod = 300 * time.Millisecond

// Debouncer coalesces a stream of text values into a single settled value.
// Each input cancels and replaces the pending timer, so only the last value
// before a full quiet period is emitted. Intermediate values never reach
// the emit callback.
type Debouncer struct {
	mu      sync.Mutex
	quiet   time.Duration
	emit    func(string)
	timer   *time.Timer
	seq     uint64
	pending string
	waiting bool
	closed  bool
}

// NewDebouncer creates a debouncer that calls emit with the settled value.
// A non-positive quiet period falls back to DefaultQuietPeriod.
func NewDebouncer(quiet time.Duration, emit func(string)) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{quiet: quiet, emit: emit}
}

// Input records a new text value and restarts the quiet-period timer.
func (d *Debouncer) Input(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	d.seq++
	seq := d.seq
	d.pending = text
	d.waiting = true

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, func() {
		d.fire(seq)
	})
}

// fire emits the pending value if no newer input superseded it.
// A stopped timer may still run its function; the sequence check keeps a
// stale firing from emitting.
func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if d.closed || seq != d.seq || !d.waiting {
		d.mu.Unlock()
		return
	}
	text := d.pending
	d.waiting = false
	emit := d.emit
	d.mu.Unlock()

	emit(text)
}

// Flush emits any pending value immediately, cancelling the timer.
// Used when the user forces a search before the quiet period elapses.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.closed || !d.waiting {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	text := d.pending
	d.waiting = false
	emit := d.emit
	d.mu.Unlock()

	emit(text)
}

// Close cancels any pending emission. The debouncer emits nothing after
// Close returns.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.waiting = false
	if d.timer != nil {
		d.timer.Stop()
	}
}
