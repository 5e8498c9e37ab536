package ooo

import "github.com/sarchlab/oosim/insts"

// Latch is a fixed-width vector of per-slot instruction handles, one
// per lane of the machine's issue width. A nil slot is the empty
// marker. Fetch, Decode and Rename each own a Latch that the next
// stage downstream reads from; Dispatch reads Rename's latch directly
// and has none of its own, since nothing else needs to observe its
// output between cycles. Issue, Writeback and Commit operate directly
// on the issue queue, ROB and writeback queue instead.
//
// An occupied slot IS the stall signal: an upstream stage that finds a
// slot still occupied simply does not overwrite it, with no separate
// stall flag threaded between stages.
type Latch struct {
	slots []*insts.Record
}

// NewLatch returns a Latch with width empty slots.
func NewLatch(width int) *Latch {
	return &Latch{slots: make([]*insts.Record, width)}
}

// Width returns the number of lanes in the latch.
func (l *Latch) Width() int {
	return len(l.slots)
}

// Get returns the instruction in slot i, or nil if empty.
func (l *Latch) Get(i int) *insts.Record {
	return l.slots[i]
}

// Set occupies slot i with instr.
func (l *Latch) Set(i int, instr *insts.Record) {
	l.slots[i] = instr
}

// Clear empties slot i.
func (l *Latch) Clear(i int) {
	l.slots[i] = nil
}

// Occupied reports whether slot i currently holds an instruction.
func (l *Latch) Occupied(i int) bool {
	return l.slots[i] != nil
}

// AllOccupied reports whether every slot in the latch is occupied,
// the condition under which an upstream stage must emit nothing at
// all this cycle.
func (l *Latch) AllOccupied() bool {
	for i := range l.slots {
		if l.slots[i] == nil {
			return false
		}
	}
	return true
}
