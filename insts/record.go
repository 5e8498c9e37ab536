package insts

import "fmt"

// Stage identifies one of the seven pipeline stages whose completion
// cycle is tracked on a Record.
type Stage int

// The seven tracked stages, in pipeline order.
const (
	StageFetch Stage = iota
	StageDecode
	StageRename
	StageDispatch
	StageIssue
	StageWriteback
	StageCommit

	numStages
)

// Unset is the sentinel stored in a Record's operand and cycle fields
// before Rename or the corresponding stage has run.
const Unset = -1

func (s Stage) String() string {
	switch s {
	case StageFetch:
		return "F"
	case StageDecode:
		return "Dc"
	case StageRename:
		return "R"
	case StageDispatch:
		return "Di"
	case StageIssue:
		return "IS"
	case StageWriteback:
		return "W"
	case StageCommit:
		return "C"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Record is the single, owned representation of one trace instruction.
// It lives for the whole simulation; every stage, queue and buffer that
// touches it holds a reference to the same Record rather than a copy, so
// a cycle stamped by one stage is immediately visible to every other.
type Record struct {
	Kind Kind

	// Op1, Op2, Op3 are the raw trace fields, in the order they were
	// read. Their meaning depends on Kind; see OperandRoles.
	Op1, Op2, Op3 int

	// PhysDst, PhysSrc1, PhysSrc2 hold the renamed values, filled during
	// Rename. PhysSrc1/PhysSrc2 correspond to whichever of Op1..Op3 is a
	// RoleSource slot for this Kind (see OperandRoles); an immediate
	// slot is copied verbatim rather than renamed.
	PhysDst, PhysSrc1, PhysSrc2 int

	// FetchIndex is assigned at Fetch and never changes afterward. It
	// names the instruction in panic and invariant-violation messages;
	// the ROB and writeback match entries by Record identity, not by
	// this field.
	FetchIndex int

	cycles [numStages]int64
}

// NewRecord builds a Record from a trace line's kind and three raw
// operand fields. All cycle fields and renamed operands start Unset.
func NewRecord(kind Kind, op1, op2, op3 int) *Record {
	r := &Record{
		Kind:       kind,
		Op1:        op1,
		Op2:        op2,
		Op3:        op3,
		PhysDst:    Unset,
		PhysSrc1:   Unset,
		PhysSrc2:   Unset,
		FetchIndex: Unset,
	}
	for i := range r.cycles {
		r.cycles[i] = Unset
	}
	return r
}

// Cycle returns the cycle at which stage s completed for this Record,
// or Unset if it has not completed yet.
func (r *Record) Cycle(s Stage) int64 {
	return r.cycles[s]
}

// Stamp records the completion cycle for stage s. It panics if s has
// already been stamped: each stage completes a Record exactly once,
// and a double-stamp means a cross-stage bookkeeping bug.
func (r *Record) Stamp(s Stage, cycle int) {
	if r.cycles[s] != Unset {
		panic(fmt.Sprintf("insts: stage %s already stamped for fetch index %d", s, r.FetchIndex))
	}
	r.cycles[s] = int64(cycle)
}

// Done reports whether every stage through Commit has completed.
func (r *Record) Done() bool {
	return r.cycles[StageCommit] != Unset
}
