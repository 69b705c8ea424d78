package resilience

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"syscall"
)

// StatusError marks an HTTP response that should be retried.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return "transient http status " + strconv.Itoa(e.Code)
}

// RetryableStatus reports whether an HTTP status code indicates a
// transient server-side condition.
func RetryableStatus(code int) bool {
	switch code {
	case 408, 429, 500, 502, 503, 504:
		return true
	}
	return false
}

// IsTransient reports whether an error is worth retrying: an explicit
// StatusError, a network timeout, or one of the usual connection-level
// failures seen when scraping flaky sites.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var se *StatusError
	if errors.As(err, &se) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, p := range []string{
		"connection reset by peer",
		"no such host",
		"tls handshake timeout",
		"i/o timeout",
		"broken pipe",
	} {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
