package library

// ValidationError reports a value that breaks an entity invariant. It is
// returned by constructors and setters and is never swallowed by Library.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(msg string) error { return &ValidationError{Msg: msg} }
