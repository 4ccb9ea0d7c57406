package reactive

import "sync/atomic"

// globalIDCounter is the source of unique IDs for signals and effects.
var globalIDCounter uint64

// NextID returns the next process-wide unique identifier.
// IDs are monotonically increasing and never reused.
func NextID() uint64 {
	return atomic.AddUint64(&globalIDCounter, 1)
}
