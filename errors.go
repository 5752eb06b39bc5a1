package sanity

import "fmt"

// Error codes used by the SDK's own failure taxonomy.
//
// Application-level failures reported by the API (permission errors,
// malformed queries, validation failures) are never mapped onto these
// codes; they arrive as a normally-completed [Response] carrying a
// non-2xx status and an error body.
const (
	// CodeInvalidConfig marks malformed construction input, such as an
	// empty project id or dataset.
	CodeInvalidConfig = "INVALID_CONFIG"

	// CodeRequestFailed marks a transport-level failure: DNS resolution,
	// connection refusal, or a timeout bubbled up from the HTTP client.
	CodeRequestFailed = "REQUEST_FAILED"

	// CodeIO marks a local file read failure during an asset upload.
	CodeIO = "IO_ERROR"

	// CodeAPI is used only by [Response.Err], the opt-in helper that
	// turns a non-2xx response into an error value.
	CodeAPI = "API_ERROR"
)

// Error represents a failure raised by the SDK.
type Error struct {
	Code    string
	Message string
	Status  int
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("sanity: %s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("sanity: %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by code so callers can compare against the sentinels
// with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors.
var (
	ErrInvalidConfig = &Error{Code: CodeInvalidConfig, Message: "invalid configuration"}
	ErrRequestFailed = &Error{Code: CodeRequestFailed, Message: "request failed"}
	ErrIO            = &Error{Code: CodeIO, Message: "file read failed"}
)

func newError(code, message string, status int, cause error) *Error {
	return &Error{Code: code, Message: message, Status: status, Cause: cause}
}

// transportError wraps a failure from the underlying HTTP client. Context
// cancellation and deadline expiry stay reachable through the cause chain.
func transportError(message string, cause error) *Error {
	return newError(CodeRequestFailed, message, 0, cause)
}
