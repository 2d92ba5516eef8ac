package services

// Kind classifies a service failure for flash display and logging.
type Kind string

const (
	KindValidation Kind = "validation" // missing or mismatched input
	KindConflict   Kind = "conflict"   // uniqueness violation
	KindAuth       Kind = "auth"       // bad credentials
	KindStore      Kind = "store"      // transactional failure, already rolled back
)

// Error is a user-presentable service failure: a human-readable message
// plus a severity category for the flash banner.
type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, if any
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Category returns the flash display category. Every failure renders in
// the "error" banner; success and info flashes are set by handlers.
func (e *Error) Category() string { return "error" }

func validationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func conflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func storeError(message string, err error) *Error {
	return &Error{Kind: KindStore, Message: message, Err: err}
}

// ErrLoginFailed is the single message for every failed login: a missing
// account and a wrong password are indistinguishable on purpose, so the
// form cannot be used to enumerate usernames.
var ErrLoginFailed = &Error{
	Kind:    KindAuth,
	Message: "Login unsuccessful. Please check username/email and password.",
}
