package hinge

import (
	"fmt"
	"time"
)

// Verbosity is the global verbosity level. Shapes are logged at level 2 and
// per-sample violation counts at level 3.
var Verbosity = 1

// logf logs output if it does not exceed the global verbosity level.
func logf(level int, format string, a ...interface{}) (n int, err error) {
	if level > Verbosity {
		return
	}
	t := time.Now()
	prefix := fmt.Sprintf("(%d) (%s) ", level, t.Format("15:04:05.999"))
	return fmt.Printf(prefix+format, a...)
}
