// Package diag is the sysex engine's internal diagnostic trace: an atomic
// enable switch guarding a pluggable structured logger, so the hot path
// (compaction, resize, payload mutation) pays nothing when tracing is off.
package diag

import (
	"os"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
)

// Log is the package-level trace, disabled by default.
var Log = &Trace{}

// Trace gates calls to an underlying *charmlog.Logger behind an atomic
// enabled flag.
type Trace struct {
	logger  *charmlog.Logger
	enabled uint32
}

// Enable turns tracing on, installing a default stderr logger if none has
// been set via SetLogger.
func (t *Trace) Enable() {
	if t.logger == nil {
		t.logger = charmlog.New(os.Stderr)
	}
	atomic.StoreUint32(&t.enabled, 1)
}

// Disable turns tracing off.
func (t *Trace) Disable() {
	atomic.StoreUint32(&t.enabled, 0)
}

// SetLogger installs the backing logger. Passing nil silences tracing
// until the next Enable, which then installs a default stderr logger.
func (t *Trace) SetLogger(l *charmlog.Logger) {
	t.logger = l
}

// Debugf emits a Debug-level structured trace when enabled.
func (t *Trace) Debugf(msg string, keyvals ...interface{}) {
	if atomic.LoadUint32(&t.enabled) == 1 && t.logger != nil {
		t.logger.Debug(msg, keyvals...)
	}
}

// SetLogger installs the package-level trace's backing logger.
func SetLogger(l *charmlog.Logger) { Log.SetLogger(l) }

// Enable turns on the package-level trace.
func Enable() { Log.Enable() }

// Disable turns off the package-level trace.
func Disable() { Log.Disable() }
