package mof

import "fmt"

// AuthError means the regulator rejected our credentials or token and a
// refresh did not help. Terminal for the current call.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("mof auth: %s", e.Message)
}

// NetworkError wraps a transport-level failure that survived the retry
// budget (timeout, connection reset, DNS).
type NetworkError struct {
	Endpoint string
	Attempts int
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("mof network: %s failed after %d attempts: %v", e.Endpoint, e.Attempts, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RemoteError carries a structured rejection from the regulator. Never
// retried; the message is surfaced verbatim to the user.
type RemoteError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("mof remote: %s returned %d: %s", e.Endpoint, e.StatusCode, e.Message)
}
