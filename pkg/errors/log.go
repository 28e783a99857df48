package errors

import (
	"github.com/charmbracelet/log"
)

// LogHandler is a Handler that writes through a charmbracelet logger.
type LogHandler struct {
	// Logger receives the reports. Nil falls back to log.Default().
	Logger *log.Logger
	// Verbose enables stack traces on panic reports.
	Verbose bool
}

func (h *LogHandler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return log.Default()
}

// HandleError logs a HostError.
func (h *LogHandler) HandleError(err *HostError) {
	if err == nil {
		return
	}
	h.logger().Error("host error", "op", err.Op, "kind", err.Kind, "err", err.Err)
}

// HandlePanic logs a PanicError, with the stack when Verbose is set.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if h.Verbose && err.StackTrace != "" {
		h.logger().Error("recovered panic", "op", err.Op, "value", err.Value, "stack", err.StackTrace)
		return
	}
	h.logger().Error("recovered panic", "op", err.Op, "value", err.Value)
}
