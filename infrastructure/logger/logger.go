package logger

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// logEntry is a single formatted line queued up for a Backend's writers.
type logEntry struct {
	level Level
	log   []byte
}

// Logger writes formatted log messages for a single subsystem to the
// Backend it was created from. The zero value is not usable; use
// Backend.Logger to create one.
type Logger struct {
	level        Level
	subsystemTag string
	b            *Backend
	writeChan    chan logEntry
}

// Level returns the current logging level of the logger.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32((*uint32)(&l.level)))
}

// SetLevel changes the logging level of the logger to the passed level.
func (l *Logger) SetLevel(level Level) {
	atomic.StoreUint32((*uint32)(&l.level), uint32(level))
}

func (l *Logger) write(level Level, s string) {
	if level < l.Level() {
		return
	}

	var buf strings.Builder
	buf.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
	buf.WriteByte(' ')
	buf.WriteByte('[')
	buf.WriteString(level.String())
	buf.WriteString("] ")
	buf.WriteString(l.subsystemTag)
	buf.WriteByte(' ')
	buf.WriteString(s)
	buf.WriteByte('\n')

	if l.b == nil || !l.b.IsRunning() {
		return
	}
	l.writeChan <- logEntry{level: level, log: []byte(buf.String())}
}

// Tracef formats and logs a message at trace level. Arguments are only
// formatted (and any LogClosure only evaluated) if trace level is enabled.
func (l *Logger) Tracef(format string, args ...interface{}) {
	if l.disabled(LevelTrace) {
		return
	}
	l.write(LevelTrace, fmt.Sprintf(format, args...))
}

// Trace logs a message at trace level.
func (l *Logger) Trace(args ...interface{}) {
	if l.disabled(LevelTrace) {
		return
	}
	l.write(LevelTrace, fmt.Sprint(args...))
}

// Debugf formats and logs a message at debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.write(LevelDebug, fmt.Sprintf(format, args...))
}

// Infof formats and logs a message at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.write(LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf formats and logs a message at warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.write(LevelWarn, fmt.Sprintf(format, args...))
}

// Errorf formats and logs a message at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.write(LevelError, fmt.Sprintf(format, args...))
}

// Criticalf formats and logs a message at critical level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.write(LevelCritical, fmt.Sprintf(format, args...))
}

// disabled reports whether messages at the given level are filtered out,
// letting callers skip building an expensive LogClosure argument.
func (l *Logger) disabled(level Level) bool {
	return level < l.Level()
}

// LogClosure is a lazily-evaluated log message. Wrap an expensive
// disassembly or stack dump in one so the cost is paid only when the
// level is actually enabled, matching the pattern the interpreter uses
// to describe each step it takes.
type LogClosure func() string

func (c LogClosure) String() string {
	return c()
}

// NewLogClosure wraps fn so it satisfies fmt.Stringer, deferring its
// evaluation until the logger actually formats the message.
func NewLogClosure(fn func() string) LogClosure {
	return LogClosure(fn)
}
