package errors

import "go.uber.org/zap"

// LogHandler is an ErrorHandler that writes to a zap logger.
// A zero LogHandler discards everything.
type LogHandler struct {
	// Logger receives the entries. Nil means zap.NewNop().
	Logger *zap.Logger
	// Verbose attaches stack traces to every entry.
	Verbose bool
}

// NewLogHandler returns a LogHandler writing to logger.
func NewLogHandler(logger *zap.Logger, verbose bool) *LogHandler {
	return &LogHandler{Logger: logger, Verbose: verbose}
}

func (h *LogHandler) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}

// HandleError logs a DrawerError. Corrected kinds go to debug level.
func (h *LogHandler) HandleError(err *DrawerError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Target != "" {
		fields = append(fields, zap.String("target", err.Target))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	if err.Kind.Corrected() {
		h.logger().Debug("drawer recovered", fields...)
		return
	}
	h.logger().Error("drawer error", fields...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Error("drawer panic", fields...)
}
