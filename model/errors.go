package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrConfiguration is returned when a grid cannot be built from the given parameters
	ErrConfiguration = errors.New("invalid grid configuration")
	// ErrIndexOutOfRange is returned for any buffer access outside [0, n)
	ErrIndexOutOfRange = errors.New("cell index out of range")
	// ErrPrematureSwap is returned when a swap is requested before the next buffer is fully written
	ErrPrematureSwap = errors.New("swap requested before next buffer was fully written")
)

// StepFault reports a step that failed before its swap was committed.
// The grid state is left exactly as it was before the step began.
type StepFault struct {
	Tick  uint64
	Cause error
}

func (f *StepFault) Error() string {
	return fmt.Sprintf("step from tick %d aborted: %v", f.Tick, f.Cause)
}

func (f *StepFault) Unwrap() error {
	return f.Cause
}
