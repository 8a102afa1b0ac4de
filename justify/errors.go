package justify

import (
	"github.com/npillmayer/libjust/core"
)

// Error codes specific to the justify package, following the core
// package's convention of small integer codes plus a human-readable
// user message.
const (
	// ECodeInvalidInput flags a caller-supplied []Break or Params that
	// violates the justifiers' contract (empty input, negative width,
	// inverted break extents, ...).
	ECodeInvalidInput int = 200
	// ECodeQueueCorrupt flags an internal inconsistency in the optimal
	// justifier's priority queue — an entry that relaxation expected to
	// find could not be located. This indicates a bug in this package,
	// not bad input.
	ECodeQueueCorrupt int = 201
	// ECodeAllocation flags a failure to size internal scratch storage
	// for the requested input, e.g. an input so large the queue's
	// capacity would overflow an int.
	ECodeAllocation int = 202
)

// Error creates a core.AppError carrying one of this package's codes and
// a formatted user message.
func Error(code int, format string, v ...interface{}) error {
	return core.Error(code, format, v...)
}
