package picker

import (
	"fmt"
	"os"
)

// SetDebugMode enables or disables debug logging to stderr. When on, the
// canvas logs gesture transitions, committed zoom and pan changes, selection
// changes, and warns about items it cannot fully work with.
func (c *Canvas) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// debugf prints a "[picker]" prefixed line to stderr when debug mode is on.
func (c *Canvas) debugf(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[picker] "+format+"\n", args...)
}

// debugCheckItem warns on stderr when an added item lacks a capability most
// canvas operations need.
func debugCheckItem(item Item) {
	_, pos := item.(Positionable)
	_, sized := item.(Sized)
	if !pos || !sized {
		_, _ = fmt.Fprintf(os.Stderr,
			"[picker] warning: item %T is not Positionable and Sized; hit testing, fit and rubber band will skip it\n",
			item)
	}
}

// debugMaxItems is the collection size above which linear hit tests are worth
// a warning.
const debugMaxItems = 5000

func (c *Canvas) debugCheckItemCount() {
	if c.debug && len(c.items) == debugMaxItems+1 {
		_, _ = fmt.Fprintf(os.Stderr, "[picker] warning: %d items on canvas (threshold %d)\n",
			len(c.items), debugMaxItems)
	}
}
