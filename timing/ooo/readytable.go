package ooo

// ReadyTable tracks, for every physical register, whether its value has
// been produced (true) or is still pending (false). Physical register 0
// is pinned true for all time, modeling the zero register.
type ReadyTable struct {
	ready []bool
}

// NewReadyTable returns a ReadyTable of the given size with every
// entry true: at machine reset every physical register is considered
// to already hold a valid value, before renaming ever marks one
// pending.
func NewReadyTable(physRegCount int) *ReadyTable {
	rt := &ReadyTable{ready: make([]bool, physRegCount)}
	for i := range rt.ready {
		rt.ready[i] = true
	}
	return rt
}

// Ready reports whether physical register p currently holds a
// committed or about-to-complete value.
func (rt *ReadyTable) Ready(p int) bool {
	return rt.ready[p]
}

// MarkPending marks p as not yet produced. Callers must never mark
// register 0 pending; Set enforces the pin.
func (rt *ReadyTable) MarkPending(p int) {
	rt.Set(p, false)
}

// MarkReady marks p as produced.
func (rt *ReadyTable) MarkReady(p int) {
	rt.Set(p, true)
}

// Set assigns p's readiness directly, except that register 0 is always
// forced true: the zero-register rule holds regardless of what a
// caller asks for.
func (rt *ReadyTable) Set(p int, ready bool) {
	if p == 0 {
		rt.ready[0] = true
		return
	}
	rt.ready[p] = ready
}

// Snapshot returns a copy of the table's current state. Dispatch and
// Issue consult a snapshot taken once at the start of each tick, rather
// than the live table, so that a register Writeback or Commit marks
// ready earlier in the same tick only becomes visible to readiness
// checks on the following cycle, the same one-tick lag every other
// stage boundary observes, with the issue queue's explicit same-cycle
// wakeup as the sole deliberate exception.
func (rt *ReadyTable) Snapshot() []bool {
	snap := make([]bool, len(rt.ready))
	copy(snap, rt.ready)
	return snap
}
