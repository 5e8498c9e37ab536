package ooo

import "github.com/sarchlab/oosim/insts"

// WritebackQueue is the FIFO hand-off from Issue to Writeback.
type WritebackQueue struct {
	entries []*insts.Record
}

// NewWritebackQueue returns an empty writeback queue.
func NewWritebackQueue() *WritebackQueue {
	return &WritebackQueue{}
}

// PushAll appends instrs to the tail, preserving their relative order.
func (q *WritebackQueue) PushAll(instrs []*insts.Record) {
	q.entries = append(q.entries, instrs...)
}

// Len returns the number of instructions currently queued.
func (q *WritebackQueue) Len() int {
	return len(q.entries)
}

// Drain removes and returns up to width entries from the head.
func (q *WritebackQueue) Drain(width int) []*insts.Record {
	n := width
	if n > len(q.entries) {
		n = len(q.entries)
	}
	drained := q.entries[:n]
	q.entries = q.entries[n:]
	return drained
}
