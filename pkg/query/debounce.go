package query

import (
	"sync"
	"time"
)

// DefaultDebounce matches the input delay the web tool shipped with.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer coalesces bursts of calls into a single trailing invocation:
// each Call cancels the pending one and re-arms the timer, so only the last
// call inside any delay window fires. There is no leading-edge call and no
// maximum-wait cap.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer builds a Debouncer. A non-positive delay means
// DefaultDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Call schedules fn after the delay, replacing any pending schedule.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
