package environment

import "log"

// Logger emits diagnostic messages. *log.Logger implements Logger.
type Logger interface {
	Printf(format string, v ...interface{})
}

// LoggerOrDefault returns l, or the standard logger if l is nil
func LoggerOrDefault(l Logger) Logger {
	if l == nil {
		return log.Default()
	}
	return l
}
