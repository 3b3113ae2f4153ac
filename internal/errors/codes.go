package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
)

// Process exit statuses used by the CLI
const (
	ExitOK     = 0
	ExitError  = 1
	ExitConfig = 2
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status for an error carrying this code.
// Configuration problems get their own status so scripts can tell them apart
// from a failed question.
func (c Code) ExitCode() int {
	switch c {
	case CodeOK, CodeCanceled:
		return ExitOK
	case CodeFailedPrecondition, CodeUnauthenticated:
		return ExitConfig
	default:
		return ExitError
	}
}
