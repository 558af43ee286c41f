package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrConfigUnavailable is returned by backends that cannot load their resolver configuration.
	ErrConfigUnavailable = errors.New("resolver configuration unavailable")
	// ErrNoSuchHost is returned when the name server answers NXDOMAIN.
	ErrNoSuchHost = errors.New("no such host")
)

// ResolutionError is the only error kind returned by Service.Resolve.
type ResolutionError struct {
	Domain string
	Err    error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("DNS lookup for %q failed: %v", e.Domain, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the lookup gave up because a deadline passed.
func (e *ResolutionError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// NotFound reports whether the name does not exist.
func (e *ResolutionError) NotFound() bool {
	if errors.Is(e.Err, ErrNoSuchHost) {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(e.Err, &dnsErr) && dnsErr.IsNotFound
}
