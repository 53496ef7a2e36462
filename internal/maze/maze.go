// Package maze simulates a list of jump offsets that are rewritten as they
// are used, counting the jumps needed to leave the list.
package maze

// springThreshold is the smallest offset that is decremented after use
const springThreshold = 3

// Maze is the state of one simulation: the offsets, the current position
// and the number of jumps taken so far.
//
// A Maze owns its offsets slice and rewrites it in place.
type Maze struct {
	offsets []int64
	pos     int64
	steps   uint64
}

// New returns a maze positioned at index 0 of offsets.
// The slice is not copied.
func New(offsets []int64) *Maze {
	return &Maze{offsets: offsets}
}

// Escaped reports whether the position is outside the offsets.
func (m *Maze) Escaped() bool {
	return m.pos < 0 || m.pos >= int64(len(m.offsets))
}

// Step takes a single jump and reports whether one was taken.
// It returns false without changing anything once the maze has been escaped.
func (m *Maze) Step() bool {
	if m.Escaped() {
		return false
	}

	off := m.offsets[m.pos]
	if off >= springThreshold {
		m.offsets[m.pos] = off - 1
	} else {
		m.offsets[m.pos] = off + 1
	}
	m.pos += off
	m.steps++
	return true
}

// Run jumps until the maze is escaped and returns the total number of jumps.
func (m *Maze) Run() uint64 {
	for m.Step() {
	}
	return m.steps
}

func (m *Maze) Position() int64 { return m.pos }
func (m *Maze) Steps() uint64 { return m.steps }
func (m *Maze) Len() int { return len(m.offsets) }

// Offsets returns a copy of the current offsets.
func (m *Maze) Offsets() []int64 {
	out := make([]int64, len(m.offsets))
	copy(out, m.offsets)
	return out
}

// Escape runs a fresh maze over offsets and returns the jump count.
// offsets is left in its final state.
func Escape(offsets []int64) uint64 {
	return New(offsets).Run()
}
