// Package trace parses the fixed two-field header and the per-line
// instruction records that drive the out-of-order engine in timing/ooo.
//
// The format is intentionally line-oriented and ASCII, matching the
// "test.in" convention: a header line of "P,W" followed by one
// "K,op1,op2,op3" line per instruction.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sarchlab/oosim/insts"
)

// ErrInputNotFound is returned when the trace file cannot be opened.
var ErrInputNotFound = errors.New("trace: input file not found")

// ErrMalformedHeader is returned when the first line does not parse into
// two positive integers.
var ErrMalformedHeader = errors.New("trace: malformed header line")

// Header holds the two machine-configuration integers read from line 1
// of the trace file.
type Header struct {
	// PhysRegCount is the physical register count, P.
	PhysRegCount int
	// IssueWidth is the issue width, W.
	IssueWidth int
}

// SkippedLine records a trace line that named an unrecognized
// instruction kind. It is non-fatal: the engine never sees the record,
// but the caller can report it.
type SkippedLine struct {
	LineNumber int
	Raw        string
	Reason     string
}

// Load opens path, parses the header line, and parses every remaining
// line into an *insts.Record. Lines naming an unknown kind are omitted
// from the returned slice and reported in skipped instead of aborting
// the load, per the engine's non-fatal-unknown-kind requirement.
func Load(path string) (*Header, []*insts.Record, []SkippedLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() {
		return nil, nil, nil, fmt.Errorf("%w: empty file", ErrMalformedHeader)
	}
	header, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, nil, nil, err
	}

	var records []*insts.Record
	var skipped []SkippedLine
	lineNumber := 1
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := parseRecord(line)
		if err != nil {
			skipped = append(skipped, SkippedLine{
				LineNumber: lineNumber,
				Raw:        line,
				Reason:     err.Error(),
			})
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("trace: reading %s: %w", path, err)
	}

	return header, records, skipped, nil
}

func parseHeader(line string) (*Header, error) {
	fields := splitFields(line)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: want 2 fields, got %d: %q", ErrMalformedHeader, len(fields), line)
	}
	p, err1 := strconv.Atoi(fields[0])
	w, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || p <= 0 || w <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	return &Header{PhysRegCount: p, IssueWidth: w}, nil
}

func parseRecord(line string) (*insts.Record, error) {
	fields := splitFields(line)
	if len(fields) != 4 {
		return nil, fmt.Errorf("want 4 fields, got %d: %q", len(fields), line)
	}
	if len(fields[0]) != 1 {
		return nil, fmt.Errorf("kind must be a single character: %q", fields[0])
	}
	kind := insts.Kind(fields[0][0])
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown instruction kind %q", fields[0])
	}
	op1, err1 := strconv.Atoi(fields[1])
	op2, err2 := strconv.Atoi(fields[2])
	op3, err3 := strconv.Atoi(fields[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, fmt.Errorf("non-integer operand in %q", line)
	}
	return insts.NewRecord(kind, op1, op2, op3), nil
}

func splitFields(line string) []string {
	raw := strings.Split(line, ",")
	fields := make([]string, 0, len(raw))
	for _, f := range raw {
		fields = append(fields, strings.TrimSpace(f))
	}
	return fields
}
