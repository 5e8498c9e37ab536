package ooo

import (
	"fmt"

	"github.com/sarchlab/oosim/insts"
)

// CheckInvariants walks the machine's tables and queues and returns an
// error describing the first violation found. It is not on the hot
// path by default, Tick only calls it when RunOptions.Debug is set,
// since it rebuilds an ownership map of every physical register each
// call.
func (p *Pipeline) CheckInvariants() error {
	if err := p.checkZeroRegister(); err != nil {
		return err
	}
	return p.checkConservation()
}

// checkZeroRegister asserts that physical register 0 never drifts
// from its pinned always-ready, always-self-mapped state.
func (p *Pipeline) checkZeroRegister() error {
	if !p.readyTable.Ready(0) {
		return fmt.Errorf("physical register 0 is not ready")
	}
	if p.mapTable.Lookup(0) != 0 {
		return fmt.Errorf("architectural register 0 maps to physical register %d, want 0", p.mapTable.Lookup(0))
	}
	return nil
}

// checkConservation asserts that every allocatable physical register
// (every index at or above ArchRegCount) is owned by exactly one of:
// the free list, or the still-in-flight instruction that allocated it,
// whether that instruction sits in the ROB or has been renamed into the
// Di latch and not yet dispatched. A register owned by neither has
// leaked; a register owned by both (or by two in-flight instructions)
// has been double-allocated.
func (p *Pipeline) checkConservation() error {
	inFlight := p.rob.Instructions()
	for i := 0; i < p.diLatch.Width(); i++ {
		if instr := p.diLatch.Get(i); instr != nil {
			inFlight = append(inFlight, instr)
		}
	}

	owner := make(map[int]*insts.Record)
	for _, instr := range inFlight {
		if !insts.ProducesDest(instr.Kind) || instr.Op1 == 0 {
			continue
		}
		if prev, ok := owner[instr.PhysDst]; ok {
			return fmt.Errorf("physical register %d double-allocated to fetch indices %d and %d", instr.PhysDst, prev.FetchIndex, instr.FetchIndex)
		}
		owner[instr.PhysDst] = instr
	}

	for preg := ArchRegCount; preg < p.cfg.PhysRegCount; preg++ {
		_, owned := owner[preg]
		free := p.freeList.Contains(preg)
		switch {
		case owned && free:
			return fmt.Errorf("physical register %d is both free and allocated to fetch index %d", preg, owner[preg].FetchIndex)
		case !owned && !free:
			return fmt.Errorf("physical register %d is neither free nor allocated: leaked", preg)
		}
	}
	return nil
}
