package ooo

import "github.com/sarchlab/oosim/insts"

// fetch refills every F slot that Decode drained this cycle, pulling
// the next instruction from the program in order. A lane whose F slot
// is still occupied, because Decode could not advance it, itself
// fenced by a Rename stall further downstream, is left untouched.
// Once the program is exhausted, fetch leaves F empty for that lane
// from then on; the fetch cursor only ever moves forward.
func (p *Pipeline) fetch(cycle int) {
	for i := 0; i < p.cfg.IssueWidth; i++ {
		if p.fLatch.Occupied(i) {
			continue
		}
		if p.fetchCursor >= len(p.program) {
			continue
		}
		instr := p.program[p.fetchCursor]
		instr.FetchIndex = p.fetchCursor
		instr.Stamp(insts.StageFetch, cycle)
		p.fLatch.Set(i, instr)
		p.fetchCursor++
	}
}
