// Package report formats the result of a maze run.
package report

import (
	"fmt"
	"io"
)

// Line returns the report line for steps, without a trailing newline.
func Line(steps uint64) string {
	return fmt.Sprintf("Escape in %d steps", steps)
}

// Write writes the report line for steps to w.
func Write(w io.Writer, steps uint64) error {
	if _, err := fmt.Fprintln(w, Line(steps)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
