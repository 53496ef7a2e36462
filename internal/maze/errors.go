package maze

import "errors"

// Error kinds returned by the loader and the simulator. Match with errors.Is.
var (
	// ErrOpen is returned when the input cannot be opened
	ErrOpen = errors.New("could not open file")

	// ErrRead is returned when a line cannot be read from the input
	ErrRead = errors.New("could not read line")

	// ErrParse is returned when a line is not a valid signed integer
	ErrParse = errors.New("could not parse offset")

	// ErrStepLimit is returned when the simulator gives up before escaping
	ErrStepLimit = errors.New("step limit reached")
)
