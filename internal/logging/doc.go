// Package logging provides structured logging for multispin.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent by default so that the editor and the CLI commands never write
// unexpected output to the terminal; set MULTISPIN_LOG_LEVEL or pass
// --log-level to turn it on.
//
// # Log Levels
//
//   - Debug: values changed notifications, remote session messages
//   - Info: remote server lifecycle and session events
//   - Warn: internal consistency violations between a spin box and its text field
//   - Error: startup failures
//
// # Structured Logging
//
//	logging.Info("Server listening",
//	    zap.String("addr", ":7680"),
//	    zap.String("preset", "hsv"),
//	)
//
// # Specialized Logging
//
//	logging.LogConsistencyViolation("before", "0°  ", text)
//	logging.LogValuesChanged(values, text)
//	logging.LogSessionEvent(remoteAddr, "session_opened")
//	logging.LogSessionMessage(remoteAddr, "received", "key", payload)
//
// # Configuration
//
//	if err := logging.Initialize(level); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Log output goes to stderr so it never mixes with command output or the
// terminal UI.
package logging
