package ooo

import (
	"fmt"

	"github.com/sarchlab/oosim/insts"
)

// Pipeline is a complete instance of the out-of-order core: the
// register-renaming tables, the issue queue, the reorder buffer, the
// writeback queue, and the front-end latches (F, Dc, Di) that hand work
// between Fetch, Decode and Rename before it reaches Dispatch. Issue,
// Writeback and Commit read and write the queue/buffer state directly
// instead of going through a latch; Rename's own output is the Di
// latch, since Dispatch is its only consumer.
type Pipeline struct {
	cfg  Config
	opts RunOptions

	mapTable   *MapTable
	readyTable *ReadyTable
	freeList   *FreeList
	iq         *IssueQueue
	rob        *ROB
	wbq        *WritebackQueue

	fLatch  *Latch
	dcLatch *Latch
	diLatch *Latch

	// readySnapshot is the ready table's state as of the end of the
	// previous tick, captured once at the start of this one. Dispatch
	// and Issue consult it instead of the live table; see
	// ReadyTable.Snapshot.
	readySnapshot []bool

	program     []*insts.Record
	fetchCursor int

	cycle     int
	completed int

	stats Statistics
}

// Option configures a Pipeline at construction time.
type Option func(*Pipeline)

// WithRunOptions overrides the pipeline's non-functional run
// parameters (verbosity, cycle cap, debug assertions).
func WithRunOptions(opts RunOptions) Option {
	return func(p *Pipeline) { p.opts = opts }
}

// NewPipeline builds a Pipeline over program, using cfg's issue width
// and physical register count to size every table, queue and latch.
func NewPipeline(cfg Config, program []*insts.Record, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pipeline{
		cfg:        cfg,
		opts:       DefaultRunOptions(),
		mapTable:   NewMapTable(),
		readyTable: NewReadyTable(cfg.PhysRegCount),
		freeList:   NewFreeList(cfg.PhysRegCount),
		iq:         NewIssueQueue(),
		rob:        NewROB(),
		wbq:        NewWritebackQueue(),
		fLatch:     NewLatch(cfg.IssueWidth),
		dcLatch:    NewLatch(cfg.IssueWidth),
		diLatch:    NewLatch(cfg.IssueWidth),
		program:    program,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Stats returns the run statistics accumulated so far.
func (p *Pipeline) Stats() Statistics {
	return p.stats
}

// Cycle returns the number of the cycle about to run. Cycle numbering
// is 0-indexed: the first call to Tick executes cycle 0, matching the
// completion cycles the report writer prints.
func (p *Pipeline) Cycle() int {
	return p.cycle
}

// Completed reports how many instructions have retired so far.
func (p *Pipeline) Completed() int {
	return p.completed
}

// Done reports whether every instruction in the program has retired.
func (p *Pipeline) Done() bool {
	return p.completed >= len(p.program)
}

// Tick runs one cycle of the machine, evaluating stages back to front
// so that every stage but Issue reads state its upstream neighbor
// produced on the previous cycle: Commit, Writeback, Issue, Dispatch,
// Rename, Decode, Fetch.
func (p *Pipeline) Tick() {
	p.readyTable.Set(0, true)

	cycle := p.cycle
	p.readySnapshot = p.readyTable.Snapshot()

	p.commit(cycle)
	p.writeback(cycle)
	p.issue(cycle)
	p.dispatch(cycle)
	p.rename(cycle)
	p.decode(cycle)
	p.fetch(cycle)

	p.stats.Cycles++
	p.cycle = cycle + 1

	if p.opts.Debug {
		if err := p.CheckInvariants(); err != nil {
			panic(fmt.Sprintf("ooo: invariant violated at cycle %d: %v", cycle, err))
		}
	}
}

// Run ticks the machine until every instruction in the program has
// retired, or until opts.CycleCap is reached (if non-zero), whichever
// comes first. It returns the number of cycles executed.
func (p *Pipeline) Run() (uint64, error) {
	for !p.Done() {
		if p.opts.CycleCap > 0 && p.stats.Cycles >= p.opts.CycleCap {
			return p.stats.Cycles, fmt.Errorf("ooo: cycle cap %d reached with %d/%d instructions committed", p.opts.CycleCap, p.completed, len(p.program))
		}
		p.Tick()
	}
	p.stats.Instructions = uint64(p.completed)
	return p.stats.Cycles, nil
}

// Records returns the program's instruction records, for reporting
// once the run has finished.
func (p *Pipeline) Records() []*insts.Record {
	return p.program
}
