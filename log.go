package allocator

import (
	"fmt"
	"os"
)

// debugAlloc is a compile-time toggle for verbose internal tracing.
const debugAlloc = false

// logAlloc is a runtime toggle for per-call grow/split/fit tracing,
// controlled by the SEGALLOC_LOG environment variable.
var logAlloc = os.Getenv("SEGALLOC_LOG") != ""

// debugLogf prints a debug message if debugAlloc is enabled.
func debugLogf(format string, args ...any) {
	if debugAlloc {
		fmt.Fprintf(os.Stderr, "[ALLOC] "+format+"\n", args...)
	}
}
