package ooo

import "github.com/sarchlab/oosim/insts"

// writeback drains up to IssueWidth completed instructions from the
// writeback queue, stamps their writeback cycle, marks their ROB entry
// ready to commit, and marks their physical destination ready so any
// issue-queue entry waiting on it can wake next cycle.
func (p *Pipeline) writeback(cycle int) {
	drained := p.wbq.Drain(p.cfg.IssueWidth)
	for _, instr := range drained {
		instr.Stamp(insts.StageWriteback, cycle)
		p.rob.MarkReady(instr)
		if insts.ProducesDest(instr.Kind) {
			p.readyTable.MarkReady(instr.PhysDst)
		}
	}
}
