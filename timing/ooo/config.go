// Package ooo implements the dynamic-scheduling core: register renaming,
// the issue queue's wakeup/select logic, the reorder buffer, and the
// per-cycle protocol that hands instructions from Dispatch to Writeback
// while Commit retires them strictly in program order.
package ooo

import (
	"encoding/json"
	"fmt"
	"os"
)

// ArchRegCount is the fixed architectural register width, A. It never
// varies with configuration.
const ArchRegCount = 32

// Config holds the two machine-configuration integers read from the
// trace header. It is immutable once the engine is built.
type Config struct {
	// IssueWidth is W, the maximum number of instructions any stage may
	// advance in a single cycle.
	IssueWidth int
	// PhysRegCount is P, the number of physical register storage slots.
	// Must exceed ArchRegCount so the free list starts non-empty.
	PhysRegCount int
}

// Validate reports a descriptive error if the issue width is less
// than 1 or the physical register count does not exceed the
// architectural register count.
func (c Config) Validate() error {
	if c.IssueWidth < 1 {
		return fmt.Errorf("ooo: issue width must be >= 1, got %d", c.IssueWidth)
	}
	if c.PhysRegCount <= ArchRegCount {
		return fmt.Errorf("ooo: phys reg count must be > %d, got %d", ArchRegCount, c.PhysRegCount)
	}
	return nil
}

// RunOptions holds non-functional run parameters that never come from
// the trace header, only from an optional JSON override file layered
// on top of the defaults below. P and W are never part of RunOptions:
// they always come from the trace header itself.
type RunOptions struct {
	// Verbose mirrors the CLI's -v flag, which prints a single end-of-run
	// summary on stdout. The pipeline itself never reads it.
	Verbose bool `json:"verbose"`
	// CycleCap bounds how many cycles Run will execute before giving up
	// on a trace that never retires, guarding against a malformed or
	// adversarial input hanging the simulator. Zero means unbounded.
	CycleCap uint64 `json:"cycle_cap"`
	// Debug enables the fatal zero-register and conservation assertions
	// in CheckInvariants after every cycle. Off by default since it walks
	// every table and queue each tick.
	Debug bool `json:"debug"`
}

// DefaultRunOptions returns the zero-value RunOptions: quiet, uncapped.
func DefaultRunOptions() RunOptions {
	return RunOptions{}
}

// LoadRunOptions reads a JSON-encoded RunOptions override from path,
// starting from DefaultRunOptions so an override file only needs to
// name the fields it changes.
func LoadRunOptions(path string) (RunOptions, error) {
	opts := DefaultRunOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("ooo: reading run options %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("ooo: parsing run options %s: %w", path, err)
	}
	return opts, nil
}
