package controls

import (
	"fmt"
	"os"
)

// debugf prints a trace line to stderr when debug mode is on.
func (e *controlEnv) debugf(format string, args ...any) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[controls] "+format+"\n", args...)
}

// debugMaxControls is the control count above which debug mode warns.
// Controls are never deleted, so a growing count usually means keys are
// being built at runtime.
const debugMaxControls = 256

func (r *Registry) debugCheckControlCount() {
	if !r.env.debug {
		return
	}
	n := len(r.buttonOrder) + len(r.axisOrder) + len(r.dragOrder)
	if n > debugMaxControls {
		_, _ = fmt.Fprintf(os.Stderr, "[controls] warning: %d controls registered (threshold %d)\n",
			n, debugMaxControls)
	}
}
