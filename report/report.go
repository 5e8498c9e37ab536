// Package report formats completed instruction records into the
// per-stage cycle table the engine's boundary contract requires, and
// the run summary the CLI prints in verbose mode.
package report

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sarchlab/oosim/insts"
)

// Write emits one line per record, in fetch order, of the form
// "idx: F, Dc, R, Di, IS, W, C" to path.
func Write(path string, records []*insts.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: creating %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	for idx, r := range records {
		_, err := fmt.Fprintf(w, "%d: %d, %d, %d, %d, %d, %d, %d\n",
			idx,
			r.Cycle(insts.StageFetch),
			r.Cycle(insts.StageDecode),
			r.Cycle(insts.StageRename),
			r.Cycle(insts.StageDispatch),
			r.Cycle(insts.StageIssue),
			r.Cycle(insts.StageWriteback),
			r.Cycle(insts.StageCommit),
		)
		if err != nil {
			return fmt.Errorf("report: writing %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("report: flushing %s: %w", path, err)
	}
	return nil
}

// Summary holds aggregate statistics over a completed run, mirroring
// the kind of breakdown a verbose CLI run prints but that never
// belongs in the fixed per-instruction output file.
type Summary struct {
	// Cycles is the number of ticks the engine ran.
	Cycles uint64
	// Instructions is the number of instructions committed.
	Instructions uint64
	// RenameStalls is the number of cycles in which Rename asserted a
	// free-list-exhaustion stall.
	RenameStalls uint64
}

// IPC returns instructions committed per cycle, or 0 if no cycles ran.
func (s Summary) IPC() float64 {
	if s.Cycles == 0 {
		return 0
	}
	return float64(s.Instructions) / float64(s.Cycles)
}

// Fprint writes a short human-readable run summary: cycle count,
// committed instruction count, rename-stall count, and IPC.
func Fprint(w *bufio.Writer, s Summary) error {
	_, err := fmt.Fprintf(w, "cycles: %d\ninstructions: %d\nrename stalls: %d\nIPC: %.3f\n",
		s.Cycles, s.Instructions, s.RenameStalls, s.IPC())
	if err != nil {
		return err
	}
	return w.Flush()
}
