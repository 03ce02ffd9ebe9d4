package interfaces

// Logger defines the interface for logging throughout the application.
// The default implementation is backed by logrus, but anything that can
// take a message plus a field map will do.
//
// Example usage:
//
//	logger.Debug("GData request", map[string]interface{}{
//		"method": "GET",
//		"uri":    "/base/feeds/snippets?bq=digital+camera",
//	})
//
//	logger.Error("Item insert failed", map[string]interface{}{
//		"status": 400,
//		"error":  err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	// Debug messages are typically used for detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	// Info messages are used for general informational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Warning messages indicate potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	// Error messages indicate failures that need attention.
	Error(msg string, fields map[string]interface{})
}