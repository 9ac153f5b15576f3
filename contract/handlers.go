package contract

import (
	"os"

	"go.uber.org/zap"
)

// exit terminates the process from Abort. Tests replace it.
var exit = os.Exit

// AbortExitCode is the process status used by Abort.
const AbortExitCode = 2

// Abort logs the violation at error level and terminates the process.
// It is the default handler.
func Abort(loc Location, condition string) {
	Logger().Error("contract violation, aborting",
		zap.String("location", loc.String()),
		zap.String("condition", condition),
	)
	_ = Logger().Sync()
	exit(AbortExitCode)
}

// Raise panics with a *Violation carrying the location and condition.
// Recover it and inspect it with errors.As.
func Raise(loc Location, condition string) {
	panic(&Violation{Location: loc, Condition: condition})
}

// Ignore discards violations. The container still refuses the operation.
func Ignore(Location, string) {}

// Log returns a handler that records each violation as a warning on logger
// and returns, so the offending operation is refused without terminating.
// A nil logger falls back to Logger().
func Log(logger *zap.Logger) Handler {
	return func(loc Location, condition string) {
		l := logger
		if l == nil {
			l = Logger()
		}
		l.Warn("contract violation",
			zap.String("location", loc.String()),
			zap.String("condition", condition),
		)
	}
}
