package ooo

import "github.com/sarchlab/oosim/insts"

// issue selects up to IssueWidth ready entries from the issue queue,
// oldest first, hands them to the writeback queue, and broadcasts
// their physical destinations as wakeup tags so any sibling waiting on
// one of them becomes eligible in this very cycle. Before selecting, it
// refreshes every entry against this tick's ready-table snapshot, which
// is how an entry whose producer wrote back on an earlier cycle, and
// so missed that producer's own same-cycle wakeup broadcast, finally
// becomes eligible.
func (p *Pipeline) issue(cycle int) {
	p.iq.Refresh(func(physReg int) bool { return p.readySnapshot[physReg] })
	selected := p.iq.Select(p.cfg.IssueWidth)
	if len(selected) == 0 {
		return
	}
	tags := make([]int, 0, len(selected))
	for _, instr := range selected {
		instr.Stamp(insts.StageIssue, cycle)
		if insts.ProducesDest(instr.Kind) {
			tags = append(tags, instr.PhysDst)
		}
	}
	p.wbq.PushAll(selected)
	p.iq.Wakeup(tags)
}
