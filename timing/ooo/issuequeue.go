package ooo

import "github.com/sarchlab/oosim/insts"

// iqEntry is one dispatched-but-not-yet-issued instruction, tracking
// its two source-operand readiness flags and its insertion age.
type iqEntry struct {
	instr     *insts.Record
	src1Ready bool
	src2Ready bool
	age       uint64
}

// IssueQueue is the unordered pool of dispatched instructions awaiting
// both operands. Entries are stored in insertion order. Since age is
// assigned monotonically at insertion and Select preserves the
// relative order of whatever it leaves behind, insertion order always
// doubles as ascending-age order, so no separate sort is ever needed
// to scan oldest-to-newest.
type IssueQueue struct {
	entries []iqEntry
	nextAge uint64
}

// NewIssueQueue returns an empty issue queue.
func NewIssueQueue() *IssueQueue {
	return &IssueQueue{}
}

// Push enqueues instr with its initial per-source readiness, assigning
// the next strictly increasing age.
func (iq *IssueQueue) Push(instr *insts.Record, src1Ready, src2Ready bool) {
	iq.entries = append(iq.entries, iqEntry{
		instr:     instr,
		src1Ready: src1Ready,
		src2Ready: src2Ready,
		age:       iq.nextAge,
	})
	iq.nextAge++
}

// Len returns the number of entries currently waiting in the queue.
func (iq *IssueQueue) Len() int {
	return len(iq.entries)
}

// Select scans the queue oldest-to-newest and removes up to width
// entries whose both readiness flags hold, returning their records in
// the order they were selected (oldest-ready-first). Entries it does
// not select, whether ineligible or beyond the width cap, stay in
// the queue in their original relative order.
func (iq *IssueQueue) Select(width int) []*insts.Record {
	selected := make([]*insts.Record, 0, width)
	remaining := make([]iqEntry, 0, len(iq.entries))
	for _, e := range iq.entries {
		if len(selected) < width && e.src1Ready && e.src2Ready {
			selected = append(selected, e.instr)
			continue
		}
		remaining = append(remaining, e)
	}
	iq.entries = remaining
	return selected
}

// Refresh upgrades any entry's readiness flags that the snapshot exposed
// by ready now reports true, without ever clearing one back to false.
// This is how an entry whose producer wrote back on a previous cycle,
// and so was never reached by Wakeup's same-cycle broadcast, eventually
// becomes eligible: Issue calls this once per cycle, ahead of Select,
// passing a lookup over the tick's ready-table snapshot.
func (iq *IssueQueue) Refresh(ready func(physReg int) bool) {
	for i := range iq.entries {
		e := &iq.entries[i]
		if !e.src1Ready && ready(e.instr.PhysSrc1) {
			e.src1Ready = true
		}
		if !e.src2Ready && ready(e.instr.PhysSrc2) {
			e.src2Ready = true
		}
	}
}

// Wakeup sets src1Ready/src2Ready true on every remaining entry whose
// renamed source operand matches one of tags, the physical
// destinations of instructions that issued this cycle. This is the
// same-cycle producer-to-consumer forwarding that lets a dependent
// instruction become eligible the very cycle its producer issues.
func (iq *IssueQueue) Wakeup(tags []int) {
	if len(tags) == 0 {
		return
	}
	for i := range iq.entries {
		e := &iq.entries[i]
		for _, tag := range tags {
			if e.instr.PhysSrc1 == tag {
				e.src1Ready = true
			}
			if e.instr.PhysSrc2 == tag {
				e.src2Ready = true
			}
		}
	}
}
