package ooo

// Statistics accumulates the counters a run reports once finished.
type Statistics struct {
	Cycles       uint64
	Instructions uint64
	RenameStalls uint64
}

// IPC returns committed instructions per cycle, or 0 if no cycles ran.
func (s Statistics) IPC() float64 {
	if s.Cycles == 0 {
		return 0
	}
	return float64(s.Instructions) / float64(s.Cycles)
}
