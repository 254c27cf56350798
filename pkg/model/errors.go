package model

import "fmt"

// MissingFieldError reports a required field absent from the source
// description. Entity names the owning body, segment or joint.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Entity, e.Field)
}

// MalformedValueError reports a field whose value has the wrong shape or
// type: a non-numeric number, a vector of the wrong arity, a non-finite
// tensor entry, or an unrecognized enumerated tag.
type MalformedValueError struct {
	Entity string
	Field  string
	Reason string
	Value  any
}

func (e *MalformedValueError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: field %q: %s", e.Entity, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: field %q: %s (got %v)", e.Entity, e.Field, e.Reason, e.Value)
}

// DuplicateNameError reports a body name that collides with a previously
// defined body.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate body name %q", e.Name)
}

// UnknownParentError reports a segment whose parent reference does not
// resolve to the root or an earlier segment.
type UnknownParentError struct {
	Segment string
	Parent  string
}

func (e *UnknownParentError) Error() string {
	return fmt.Sprintf("segment %q: parent %q is not a previously defined body", e.Segment, e.Parent)
}

// WriteError reports a failure delivering the rendered document to the
// output sink.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("writing URDF: %v", e.Err)
	}
	return fmt.Sprintf("writing URDF to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
