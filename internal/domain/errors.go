package domain

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/jmgilman/go/errors"
)

const (
	// CodeIOFailure is a local I/O failure that is neither a missing file nor a permission problem.
	CodeIOFailure errors.ErrorCode = "IO_FAILURE"
	// CodeHTTP is a response with a status outside the 2xx range.
	CodeHTTP errors.ErrorCode = "HTTP_ERROR"
)

// ErrWrongMode is in the chain of every error returned by an operation called in the wrong mode.
var ErrWrongMode = errors.New(errors.CodeInvalidInput, "operation not available in this mode")

// HTTPError carries the status of a failed remote request.
type HTTPError struct {
	StatusCode int
	Reason     string
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s for URL %s", e.StatusCode, e.Reason, e.URL)
}

// NewHTTPError builds an HTTP_ERROR wrapping *HTTPError. An empty reason falls back to the
// standard status text.
func NewHTTPError(url string, statusCode int, reason string) errors.PlatformError {
	if reason == "" {
		reason = http.StatusText(statusCode)
	}
	httpErr := &HTTPError{StatusCode: statusCode, Reason: reason, URL: url}
	return errors.WrapWithContext(httpErr, CodeHTTP, "remote request failed", map[string]interface{}{
		"url":    url,
		"status": statusCode,
	})
}

// ConfigError reports an accessor that cannot be constructed.
func ConfigError(format string, args ...interface{}) errors.PlatformError {
	return errors.Newf(errors.CodeInvalidConfig, format, args...)
}

// WrongMode reports op being called on an accessor whose mode does not allow it.
func WrongMode(op string, current Mode, allowed ...Mode) errors.PlatformError {
	names := make([]string, len(allowed))
	for i, m := range allowed {
		names[i] = "'" + m.String() + "'"
	}
	return errors.Wrapf(ErrWrongMode, errors.CodeInvalidInput,
		"%s() is only available in mode %s, current mode: '%s'", op, joinOr(names), current)
}

// FileError classifies a file system error for path. action is "read" or "write".
func FileError(err error, action, path string) errors.PlatformError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return errors.WrapWithContext(err, errors.CodeNotFound,
			fmt.Sprintf("file '%s' not found", path), map[string]interface{}{"path": path})
	case errors.Is(err, fs.ErrPermission):
		return errors.WrapWithContext(err, errors.CodeForbidden,
			fmt.Sprintf("no permission to %s file '%s'", action, path), map[string]interface{}{"path": path})
	}
	return IOFailure(err, "failed to %s file '%s'", action, path)
}

// IOFailure wraps err as a generic local I/O failure.
func IOFailure(err error, format string, args ...interface{}) errors.PlatformError {
	if err == nil {
		return errors.Newf(CodeIOFailure, format, args...)
	}
	return errors.Wrapf(err, CodeIOFailure, format, args...)
}

// NetworkError wraps a transport level failure for url.
func NetworkError(err error, url string, timeout bool) errors.PlatformError {
	msg := "failed to reach URL " + url
	if timeout {
		msg = "timed out loading URL " + url
	}
	return errors.WrapWithContext(err, errors.CodeNetwork, msg, map[string]interface{}{
		"url":     url,
		"timeout": timeout,
	})
}

func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	out := items[0]
	for _, item := range items[1 : len(items)-1] {
		out += ", " + item
	}
	return out + " or " + items[len(items)-1]
}
