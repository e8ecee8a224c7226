package colour

import (
	"errors"
	"fmt"
)

// ErrEmptyPalette is returned when the pixel buffer contains no samples, or
// clustering yields no usable clusters. The pipeline aborts and produces no
// theme; the computation is deterministic so retrying cannot help.
var ErrEmptyPalette = errors.New("image contains no usable pixels")

// InvalidConfigError reports a configuration field that failed eager
// validation. No pixel processing happens before validation passes.
type InvalidConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s = %v (%s)", e.Field, e.Value, e.Reason)
}
