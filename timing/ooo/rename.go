package ooo

import "github.com/sarchlab/oosim/insts"

// needsDestAlloc reports whether instr allocates a fresh physical
// register at Rename: every kind but Store produces a destination,
// and the zero-register rule suppresses allocation when the
// architectural destination is register 0.
func needsDestAlloc(instr *insts.Record) bool {
	return insts.ProducesDest(instr.Kind) && instr.Op1 != 0
}

// resolveOperands maps instr's raw trace fields onto PhysSrc1/PhysSrc2
// per the operand-slot semantics for its kind: a renamed-source slot
// is looked up in the map table, an immediate slot is passed through
// verbatim.
func (p *Pipeline) resolveOperands(instr *insts.Record) (physSrc1, physSrc2 int) {
	switch instr.Kind {
	case insts.KindRegister:
		return p.mapTable.Lookup(instr.Op2), p.mapTable.Lookup(instr.Op3)
	case insts.KindImmediate:
		return p.mapTable.Lookup(instr.Op2), instr.Op3
	case insts.KindLoad:
		return instr.Op2, p.mapTable.Lookup(instr.Op3)
	case insts.KindStore:
		return p.mapTable.Lookup(instr.Op1), p.mapTable.Lookup(instr.Op3)
	default:
		return insts.Unset, insts.Unset
	}
}

// rename advances Dc -> Di for each occupied slot, in left-to-right
// program order. A slot that needs a destination but finds the free
// list empty asserts a rename stall: it and every slot to its right
// stay in Dc untouched this cycle, fencing Decode and Fetch behind them
// (see decode/fetch, which check Dc/F occupancy rather than a shared
// stall flag).
func (p *Pipeline) rename(cycle int) {
	stalled := false
	for i := 0; i < p.cfg.IssueWidth; i++ {
		instr := p.dcLatch.Get(i)
		if instr == nil {
			continue
		}
		if stalled {
			continue
		}

		src1, src2 := p.resolveOperands(instr)
		instr.PhysSrc1 = src1
		instr.PhysSrc2 = src2

		switch {
		case needsDestAlloc(instr):
			if p.freeList.Empty() {
				stalled = true
				p.stats.RenameStalls++
				continue
			}
			dst := p.freeList.Pop()
			p.readyTable.MarkPending(dst)
			instr.PhysDst = dst
			p.mapTable.Set(instr.Op1, dst)
		case insts.ProducesDest(instr.Kind):
			// arch_dst == 0: no allocation, no map-table update, but
			// PhysDst still reads as the always-ready zero register.
			instr.PhysDst = 0
		default:
			// Store: no destination, but PhysDst still mirrors the
			// mapped Op1 source register for inspection purposes.
			// Writeback matching uses Record identity, not this field.
			instr.PhysDst = p.mapTable.Lookup(instr.Op1)
		}

		instr.Stamp(insts.StageRename, cycle)
		p.diLatch.Set(i, instr)
		p.dcLatch.Clear(i)
	}
}
