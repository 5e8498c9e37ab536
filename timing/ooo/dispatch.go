package ooo

import "github.com/sarchlab/oosim/insts"

// dispatchReadiness reports, per kind, which of an instruction's two
// physical sources must be treated as ready without consulting the
// ready table: an immediate operand never needs to wait, and a store
// is considered ready on both operands the moment it dispatches (its
// address and value checks sit outside the wakeup fabric modeled here).
// Register sources are checked against the tick's ready-table snapshot,
// not the live table, so a same-cycle Writeback does not leak into a
// dispatch decision one cycle early.
func (p *Pipeline) dispatchReadiness(instr *insts.Record) (src1Ready, src2Ready bool) {
	switch instr.Kind {
	case insts.KindRegister:
		return p.readySnapshot[instr.PhysSrc1], p.readySnapshot[instr.PhysSrc2]
	case insts.KindImmediate:
		return p.readySnapshot[instr.PhysSrc1], true
	case insts.KindLoad:
		return true, p.readySnapshot[instr.PhysSrc2]
	case insts.KindStore:
		return true, true
	default:
		return true, true
	}
}

// dispatch advances Di -> issue queue / ROB for each occupied slot.
// Unlike Rename, Dispatch never stalls: every occupied Di slot always
// has a destination register already reserved (or none needed), so
// there is no resource it can run out of.
func (p *Pipeline) dispatch(cycle int) {
	for i := 0; i < p.cfg.IssueWidth; i++ {
		instr := p.diLatch.Get(i)
		if instr == nil {
			continue
		}
		src1Ready, src2Ready := p.dispatchReadiness(instr)
		p.iq.Push(instr, src1Ready, src2Ready)
		p.rob.Push(instr)
		instr.Stamp(insts.StageDispatch, cycle)
		p.diLatch.Clear(i)
	}
}
