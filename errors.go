package leafgo

import (
	"errors"
	"fmt"
)

// InvalidHandleError is returned when a missing native reference would have
// been wrapped or passed to the engine.
type InvalidHandleError struct {
	Op string
}

func (e *InvalidHandleError) Error() string {
	if e.Op == "" {
		return "leafgo: invalid native handle"
	}
	return "leafgo: " + e.Op + ": invalid native handle"
}

// NativeCallError carries a failure raised by the native engine during a
// forwarded call. Payload is whatever the engine threw, passed through
// unmodified.
type NativeCallError struct {
	Method  string
	Payload any
}

func (e *NativeCallError) Error() string {
	if e.Payload == nil {
		return fmt.Sprintf("leafgo: native call %s failed", e.Method)
	}
	return fmt.Sprintf("leafgo: native call %s failed: %v", e.Method, e.Payload)
}

// Unwrap exposes the payload when the engine threw a Go error.
func (e *NativeCallError) Unwrap() error {
	err, _ := e.Payload.(error)
	return err
}

// IsInvalidHandle reports whether err is or wraps an *InvalidHandleError.
func IsInvalidHandle(err error) bool {
	var ih *InvalidHandleError
	return errors.As(err, &ih)
}

// IsNativeCall reports whether err is or wraps a *NativeCallError.
func IsNativeCall(err error) bool {
	var nc *NativeCallError
	return errors.As(err, &nc)
}
