package logger

type Logger interface {
	Logf(format string, args ...interface{})
	Log(msg string)
}

// NoopLogger discards everything. It backs non-verbose runs so the checked
// output stays byte-stable.
type NoopLogger struct{}

func (n *NoopLogger) Logf(format string, args ...interface{}) {}
func (n *NoopLogger) Log(msg string)                          {}
