package httperror

import (
	"fmt"
	"runtime"
)

const maxStackDepth = 32

// captureStack records up to maxStackDepth frames as "file:line func"
// strings, skipping the runtime plumbing, captureStack itself and skip
// additional frames so the trace starts at the constructor.
func captureStack(skip int) []string {
	pcs := make([]uintptr, maxStackDepth)

	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]string, 0, n)

	for {
		frame, more := frames.Next()
		stack = append(stack, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))

		if !more {
			break
		}
	}

	return stack
}
