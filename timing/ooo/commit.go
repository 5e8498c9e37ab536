package ooo

import "github.com/sarchlab/oosim/insts"

// commit retires up to IssueWidth instructions from the ROB head, in
// strict program order, stopping at the first non-ready entry or an
// empty buffer. A retired instruction that owns a physical register,
// every kind but Store, and only when its architectural destination
// was not register 0, returns that register to the free list.
func (p *Pipeline) commit(cycle int) {
	for i := 0; i < p.cfg.IssueWidth; i++ {
		if p.rob.Empty() || !p.rob.HeadReady() {
			break
		}
		instr := p.rob.PopHead()
		instr.Stamp(insts.StageCommit, cycle)
		if insts.ProducesDest(instr.Kind) && instr.Op1 != 0 {
			p.freeList.Push(instr.PhysDst)
		}
		p.completed++
	}
}
