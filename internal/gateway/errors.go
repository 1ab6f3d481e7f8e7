package gateway

import (
	"errors"
	"fmt"
	"net"
	"syscall"
)

// ErrMissingAPIKey means no Gemini API key was found in config or
// environment. Nothing can be sent without one.
var ErrMissingAPIKey = errors.New("gateway: API key is missing")

// CallError wraps a transport-level failure of one gateway operation.
// The model was never reached, or the connection dropped mid-call.
type CallError struct {
	Op  string
	Err error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("gateway: %s call failed: %v", e.Op, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// SchemaViolationError means the model answered, but the payload does
// not satisfy the contract for the operation: unparseable JSON, missing
// required fields, or an incomplete rescue plan for a sick plant.
type SchemaViolationError struct {
	Op     string
	Detail string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("gateway: %s returned malformed payload: %s", e.Op, e.Detail)
}

// IsSchemaViolation reports whether err is a SchemaViolationError.
func IsSchemaViolation(err error) bool {
	var sv *SchemaViolationError
	return errors.As(err, &sv)
}

// Offline reports whether err looks like missing connectivity rather
// than an API rejection: DNS failures, unreachable networks, refused
// or timed-out connections. Callers use it to show a blocking
// "you're offline" message instead of a raw transport error.
func Offline(err error) bool {
	var callErr *CallError
	if !errors.As(err, &callErr) {
		return false
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ETIMEDOUT)
}
