package components

// timerEpsilon absorbs float error from accumulating fixed steps.
const timerEpsilon = 1e-9

// Timer is a one-shot deadline in simulation seconds. Every Start bumps
// Generation and replaces the deadline, so a window armed earlier can never
// fire after a restart.
type Timer struct {
	Generation uint64
	Deadline   float64
	Armed      bool
}

// Start arms the timer to fire duration seconds after now, replacing any
// pending deadline.
func (t *Timer) Start(now, duration float64) {
	t.Generation++
	t.Deadline = now + duration
	t.Armed = true
}

// Remaining is the time left before the deadline, or 0 when disarmed.
func (t *Timer) Remaining(now float64) float64 {
	if !t.Armed || now >= t.Deadline {
		return 0
	}
	return t.Deadline - now
}

// Expired reports true exactly once, on the first call at or after the
// current deadline.
func (t *Timer) Expired(now float64) bool {
	if !t.Armed || now+timerEpsilon < t.Deadline {
		return false
	}
	t.Armed = false
	return true
}
