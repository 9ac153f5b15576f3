package contract

import "go.uber.org/zap"

var logger = zap.NewNop()

// Logger returns the logger used by Abort and by Log handlers created with
// a nil logger. It is a no-op logger until SetLogger is called.
func Logger() *zap.Logger {
	return logger
}

// SetLogger replaces the package logger. A nil logger restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
