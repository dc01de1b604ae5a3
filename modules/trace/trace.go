// Package trace provides the engine-wide logging helpers: a leveled
// logger plumbed in by callers and an Errorf that logs at the call site
// before returning a plain error, so a failure's origin survives whatever
// wrapping happens above it.
package trace

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Debuger mirrors the verbose/quiet split used across the engine's
// collaborators: DbgPrint is a no-op unless the caller opted into verbose
// tracing.
type Debuger interface {
	DbgPrint(format string, args ...any)
}

func NewDebuger(verbose bool, log logrus.FieldLogger) Debuger {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &debuger{verbose: verbose, log: log}
}

type debuger struct {
	verbose bool
	log     logrus.FieldLogger
}

func (d *debuger) DbgPrint(format string, args ...any) {
	if !d.verbose {
		return
	}
	d.log.Debugf(format, args...)
}

var _ Debuger = &debuger{}

// Location returns the calling function's name and line, skip frames up
// from this call.
func Location(skip int) (string, int) {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return "?", line
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "?", line
	}
	return fn.Name(), line
}

// Errorf formats a message, logs it at Error level tagged with the
// caller's location, and returns it as a plain error.
func Errorf(format string, a ...any) error {
	fn, line := Location(2)
	msg := fmt.Sprintf(format, a...)
	logrus.WithField("at", fmt.Sprintf("%s:%d", fn, line)).Error(msg)
	return fmt.Errorf("%s", msg)
}
