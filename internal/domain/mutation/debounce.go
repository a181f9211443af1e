package mutation

import (
	"sync"
	"time"

	"github.com/solrange/fitsim/internal/domain/shared"
)

// DefaultDebounceDelay is how long live validation waits after the last
// keystroke before running.
const DefaultDebounceDelay = 100 * time.Millisecond

// Debouncer coalesces rapid triggers into a single deferred call. At most
// one call is outstanding: each Trigger cancels the previous pending one,
// and a canceled or closed debouncer never runs a stale callback.
type Debouncer struct {
	delay time.Duration
	clock shared.Clock

	mu     sync.Mutex
	gen    uint64
	closed bool
}

// NewDebouncer creates a debouncer with the given delay.
// Clock is injected for testability; nil means the real clock.
func NewDebouncer(delay time.Duration, clock shared.Clock) *Debouncer {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &Debouncer{delay: delay, clock: clock}
}

// Trigger schedules fn to run after the debounce delay, canceling any
// previously pending call. fn runs under the debouncer's lock so a
// concurrent Cancel or Close observed mid-flight still wins; fn must not
// call back into the debouncer.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.gen++
	gen := d.gen
	d.mu.Unlock()

	go func() {
		d.clock.Sleep(d.delay)

		d.mu.Lock()
		defer d.mu.Unlock()
		if d.closed || gen != d.gen {
			return
		}
		fn()
	}()
}

// Cancel drops any pending call without closing the debouncer.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	d.gen++
	d.mu.Unlock()
}

// Close cancels any pending call and prevents all future ones. Used when
// the edit session ends so no validation fires afterwards.
func (d *Debouncer) Close() {
	d.mu.Lock()
	d.closed = true
	d.gen++
	d.mu.Unlock()
}
