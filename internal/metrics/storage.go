package metrics

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/aws/smithy-go"
)

// RecordStorageOperation records a file store call
func (m *Metrics) RecordStorageOperation(backend, operation string, duration time.Duration, err error) {
	m.safeExecute("RecordStorageOperation", func() {
		status := "success"
		if err != nil {
			status = "error"
		}

		m.StorageOperationsTotal.WithLabelValues(backend, operation, status).Inc()
		m.StorageOperationDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())

		if err != nil {
			m.StorageErrors.WithLabelValues(backend, operation, getErrorType(err)).Inc()
		}
	})
}

// getErrorType categorizes storage errors
func getErrorType(err error) string {
	if err == nil {
		return "unknown"
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, os.ErrNotExist):
		return "not_found"
	case errors.Is(err, os.ErrPermission):
		return "permission_denied"
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return "not_found"
		case "NoSuchBucket":
			return "no_such_bucket"
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return "access_denied"
		case "SlowDown", "Throttling":
			return "throttled"
		}
		return "api_error"
	}

	errMsg := err.Error()
	switch {
	case strings.Contains(errMsg, "connection refused"):
		return "connection_refused"
	case strings.Contains(errMsg, "no such host"):
		return "dns_error"
	case strings.Contains(errMsg, "timeout"):
		return "timeout"
	case strings.Contains(errMsg, "EOF") || strings.Contains(errMsg, "connection reset"):
		return "connection_reset"
	case strings.Contains(errMsg, "TLS") || strings.Contains(errMsg, "certificate"):
		return "tls_error"
	}
	return "io_error"
}
