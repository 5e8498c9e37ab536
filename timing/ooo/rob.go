package ooo

import "github.com/sarchlab/oosim/insts"

// robEntry is one reorder-buffer slot.
type robEntry struct {
	instr     *insts.Record
	ready     bool
	committed bool
}

// ROB is the in-order FIFO used to retire instructions in program
// order after they complete out of order. Entries are enqueued at
// Dispatch in Fetch order and dequeued at Commit, also in Fetch order.
//
// Writeback locates the entry to mark ready by the Record's identity,
// not by comparing physical destination registers or fetch indices:
// every Record is owned exactly once by the instruction memory, and
// each ROB entry borrows a reference to that same Record, so pointer
// identity is unambiguous even for store kinds, which have no
// physical destination of their own, and can never collide the way a
// register-number match could between two in-flight entries.
type ROB struct {
	entries []robEntry
}

// NewROB returns an empty reorder buffer.
func NewROB() *ROB {
	return &ROB{}
}

// Push enqueues a new, not-yet-ready entry for instr at the tail.
func (r *ROB) Push(instr *insts.Record) {
	r.entries = append(r.entries, robEntry{instr: instr})
}

// Len returns the number of entries currently in the buffer.
func (r *ROB) Len() int {
	return len(r.entries)
}

// Empty reports whether the buffer holds no entries.
func (r *ROB) Empty() bool {
	return len(r.entries) == 0
}

// HeadReady reports whether the oldest entry is ready to commit. It
// panics if the buffer is empty; callers must check Empty first.
func (r *ROB) HeadReady() bool {
	if r.Empty() {
		panic("ooo: HeadReady on empty ROB")
	}
	return r.entries[0].ready
}

// PopHead removes and returns the oldest entry's instruction. It
// panics if the buffer is empty or the head is not ready: commit is
// strictly in-order and never retires an unready instruction.
func (r *ROB) PopHead() *insts.Record {
	if r.Empty() {
		panic("ooo: PopHead on empty ROB")
	}
	if !r.entries[0].ready {
		panic("ooo: PopHead on a non-ready ROB head")
	}
	instr := r.entries[0].instr
	r.entries = r.entries[1:]
	return instr
}

// MarkReady finds the entry borrowing instr and marks it ready. It is
// a no-op if no entry matches, which should never happen for a
// well-formed writeback.
func (r *ROB) MarkReady(instr *insts.Record) {
	for i := range r.entries {
		if r.entries[i].instr == instr {
			r.entries[i].ready = true
			return
		}
	}
}

// Instructions returns the instruction records currently held by the
// ROB, oldest first. Used by invariant checks, not the hot path.
func (r *ROB) Instructions() []*insts.Record {
	out := make([]*insts.Record, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.instr
	}
	return out
}
