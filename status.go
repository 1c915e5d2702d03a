package brushpaint

import "errors"

// Code classifies an error for hosts that surface failures as their own
// error or exception types.
type Code int

const (
	// CodeOK means no error.
	CodeOK Code = iota
	// CodeInvalidArgument means the configuration was rejected by Validate.
	CodeInvalidArgument
	// CodeUnknown is every other error.
	CodeUnknown
)

// String returns the canonical upper-case name of the code.
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeInvalidArgument:
		return "INVALID_ARGUMENT"
	case CodeUnknown:
		return "UNKNOWN"
	default:
		return undefinedEnum("Code", int(c))
	}
}

// CodeOf classifies err.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrInvalidArgument):
		return CodeInvalidArgument
	default:
		return CodeUnknown
	}
}

// Reporter receives failures destined for a host runtime, such as a
// language binding that raises an exception for them. The message is the
// error's text, unmodified.
type Reporter interface {
	Report(code Code, message string)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(code Code, message string)

// Report calls f(code, message).
func (f ReporterFunc) Report(code Code, message string) {
	f(code, message)
}

// CheckOK returns true if err is nil. Otherwise it reports err to r and
// returns false; the caller should hand control back to the host
// immediately so the reported failure can be raised.
func CheckOK(r Reporter, err error) bool {
	if err == nil {
		return true
	}
	r.Report(CodeOf(err), err.Error())
	return false
}
