package plonk

import "fmt"

// ConfigurationError indicates an invariant was violated whilst building the
// circuit shape (e.g. a lookup input referencing a simple selector).  Such
// errors are fatal, in that construction of the circuit must not proceed.
type ConfigurationError struct {
	msg string
}

// NewConfigurationError constructs a configuration error from a format string.
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{fmt.Sprintf(format, args...)}
}

func (p *ConfigurationError) Error() string {
	return p.msg
}

// AssignmentError indicates witness assignment went wrong, such as a cell
// being written twice or a region being used after it was closed.  Assignment
// errors propagate immediately to the caller; there is no partial commit.
type AssignmentError struct {
	msg string
}

// NewAssignmentError constructs an assignment error from a format string.
func NewAssignmentError(format string, args ...any) *AssignmentError {
	return &AssignmentError{fmt.Sprintf(format, args...)}
}

func (p *AssignmentError) Error() string {
	return p.msg
}
