package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	tests := []struct {
		steps uint64
		want  string
	}{
		{steps: 0, want: "Escape in 0 steps"},
		{steps: 10, want: "Escape in 10 steps"},
		{steps: 25608480, want: "Escape in 25608480 steps"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Line(tt.steps))
		})
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, 10))
	assert.Equal(t, "Escape in 10 steps\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWrite_Error(t *testing.T) {
	err := Write(failingWriter{}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write report: closed pipe")
}
