package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// maxLineBytes bounds a single input line
const maxLineBytes = 1024 * 1024

// LoadFile reads the offsets stored in the file at path, one per line.
func LoadFile(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses one signed integer per line from r, preserving line order.
// Any unreadable or unparseable line aborts the load and no offsets are returned.
func Read(r io.Reader) ([]int64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	offsets := []int64{}
	line := 0
	for scanner.Scan() {
		line++
		n, err := strconv.ParseInt(scanner.Text(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrParse, line, err)
		}
		offsets = append(offsets, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: after line %d: %w", ErrRead, line, err)
	}

	return offsets, nil
}
