package maze

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
)

// Simulator runs mazes and logs their progress
type Simulator struct {
	logger   *slog.Logger
	maxSteps uint64
}

// NewSimulator creates a new simulator. A maxSteps of 0 means no limit.
func NewSimulator(logger *slog.Logger, maxSteps uint64) *Simulator {
	return &Simulator{
		logger:   logger,
		maxSteps: maxSteps,
	}
}

// Run jumps through offsets from index 0 until the position leaves the list
// and returns the number of jumps taken. offsets is rewritten in place.
//
// With a step limit configured, Run returns ErrStepLimit together with the
// number of jumps taken when the limit is hit before escaping.
func (s *Simulator) Run(offsets []int64) (uint64, error) {
	startTime := time.Now()
	s.logger.Debug("simulation started",
		"offsets", len(offsets),
		"max_steps", s.maxSteps)

	m := New(offsets)
	if s.maxSteps == 0 {
		m.Run()
	} else {
		for !m.Escaped() {
			if m.Steps() >= s.maxSteps {
				s.logger.Info("step limit reached before escape",
					"max_steps", s.maxSteps,
					"position", m.Position())
				return m.Steps(), fmt.Errorf("%w: no escape after %d steps (position %d)", ErrStepLimit, m.Steps(), m.Position())
			}
			m.Step()
		}
	}

	s.logger.Debug("simulation completed",
		"steps", m.Steps(),
		"steps_human", humanize.Comma(int64(m.Steps())),
		"exit_position", m.Position(),
		"duration", time.Since(startTime))

	return m.Steps(), nil
}
