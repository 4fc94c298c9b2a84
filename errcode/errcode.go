package errcode

// Code is a stable, caller-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Locked is returned by the checked mutex when a lock is attempted
	// while one is already outstanding. It signals a concurrency bug in
	// the caller, not a transient condition; do not retry.
	Locked Code = "locked"

	// WrongContext is returned when a goroutine-pinned proxy is used from
	// a goroutine other than the one that acquired it.
	WrongContext Code = "wrong_context"

	// AlreadyClaimed is returned by a static slot on a second claim.
	AlreadyClaimed Code = "already_claimed"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
