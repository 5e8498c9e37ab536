package ooo

// FreeList is the FIFO pool of physical register indices not currently
// assigned to any live architectural name. Rename pops from the head;
// Commit pushes reclaimed registers onto the tail.
type FreeList struct {
	regs []int
}

// NewFreeList returns a FreeList seeded with ArchRegCount..physRegCount-1
// in increasing order: every physical register beyond the architectural
// register file starts out unassigned and spare.
func NewFreeList(physRegCount int) *FreeList {
	fl := &FreeList{regs: make([]int, 0, physRegCount-ArchRegCount)}
	for p := ArchRegCount; p < physRegCount; p++ {
		fl.regs = append(fl.regs, p)
	}
	return fl
}

// Empty reports whether no physical register is available to allocate.
func (fl *FreeList) Empty() bool {
	return len(fl.regs) == 0
}

// Pop removes and returns the head of the free list. It panics if the
// list is empty; callers must check Empty first, since an empty free
// list is a rename-stall condition, not an error.
func (fl *FreeList) Pop() int {
	if fl.Empty() {
		panic("ooo: Pop from empty free list")
	}
	p := fl.regs[0]
	fl.regs = fl.regs[1:]
	return p
}

// Push reclaims a physical register onto the tail of the free list.
func (fl *FreeList) Push(preg int) {
	fl.regs = append(fl.regs, preg)
}

// Len returns the number of physical registers currently free.
func (fl *FreeList) Len() int {
	return len(fl.regs)
}

// Contains reports whether preg is currently on the free list. Used by
// the conservation invariant checks, not by the hot path.
func (fl *FreeList) Contains(preg int) bool {
	for _, p := range fl.regs {
		if p == preg {
			return true
		}
	}
	return false
}
