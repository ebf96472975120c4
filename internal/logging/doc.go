// Package logging provides structured logging for bootsplash.
//
// This package wraps Go's log/slog to write JSON-formatted logs to a file in
// the bootsplash state directory. The splash owns the terminal while it runs
// (alt screen), so logs never go to stdout; a disabled logger discards.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/state", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("overlay mounted", "duration_ms", 10000)
//
// # Context Propagation
//
// Child loggers carry persistent attributes:
//
//	runLogger := logger.WithSession(uuid.NewString())
//	overlayLogger := runLogger.WithComponent("overlay")
//	overlayLogger.Info("content rotated", "index", 2)
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"content rotated","session_id":"...","component":"overlay","index":2}
//
// # Log Rotation
//
//	config := logging.RotationConfig{MaxSizeMB: 10, MaxBackups: 3}
//	logger, err := logging.NewLoggerWithRotation("/path/to/state", "INFO", config)
//
// Rotated files are named bootsplash.log.1, bootsplash.log.2, etc., where .1
// is the most recent backup. With Compress set they become bootsplash.log.1.gz.
//
// # Testing
//
// Use [NopLogger] to discard all output.
package logging
