package txscript

import "github.com/btcforge/txscript/infrastructure/logger"

// log is the package logger, built on a package-private backend;
// callers that want output wire it up via UseLogger, mirroring the pack's own
// subsystem-logger convention (each package owns one *logger.Logger
// named log and exposes a UseLogger setter).
var log = logger.NewBackend().Logger("SCRIPT")

// UseLogger sets the logger the engine uses for its trace-level step
// output. Passing a logger with LevelOff (the default) disables the
// tracing entirely, so the LogClosure arguments used throughout
// engine.go cost nothing until a caller opts in.
func UseLogger(l *logger.Logger) {
	log = l
}
