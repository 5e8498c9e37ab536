package ooo

import "github.com/sarchlab/oosim/insts"

// decode advances F -> Dc: a one-cycle pass-through that does nothing
// but stamp and relocate an instruction. If any Dc slot is still
// occupied by an instruction Rename did not drain this cycle, every F
// slot holds in place, so that no younger instruction lands in a lane
// Rename would reach before the stalled, older one. Fetch, which runs
// after Decode within the same tick, sees those F slots still occupied
// and refuses to overwrite them.
func (p *Pipeline) decode(cycle int) {
	for i := 0; i < p.cfg.IssueWidth; i++ {
		if p.dcLatch.Occupied(i) {
			return
		}
	}
	for i := 0; i < p.cfg.IssueWidth; i++ {
		instr := p.fLatch.Get(i)
		if instr == nil {
			continue
		}
		instr.Stamp(insts.StageDecode, cycle)
		p.dcLatch.Set(i, instr)
		p.fLatch.Clear(i)
	}
}
