package vtcore

import (
	"log/slog"
	"sync/atomic"
)

var activeLogger atomic.Pointer[slog.Logger]

// SetLogger installs the process-wide diagnostic logger used by every
// Engine for unknown sequences and OSC title changes. The last caller to
// set it wins, regardless of which Engine instance called it from; pass
// nil to silence diagnostics again. Per-instance diagnostics are not
// supported — route those through a PtyWriter instead.
func SetLogger(l *slog.Logger) {
	activeLogger.Store(l)
}

func logger() *slog.Logger {
	if l := activeLogger.Load(); l != nil {
		return l
	}
	return slog.New(slog.DiscardHandler)
}
