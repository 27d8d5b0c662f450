package errors

import "fmt"

// ErrNotFound indicates that a resource does not exist on the backend
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ErrUnauthorized indicates rejected credentials or missing permissions
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	if e.Message == "" {
		return "unauthorized"
	}
	return e.Message
}

// ErrValidation indicates invalid input, either rejected locally before a
// request is issued or reported by the backend in its detail field
type ErrValidation struct {
	Field  string
	Detail string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return e.Detail
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Detail)
}

// ErrInvalidStateTransition indicates an order status change that the
// lifecycle does not allow
type ErrInvalidStateTransition struct {
	From fmt.Stringer
	To   fmt.Stringer
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// ErrAPI carries a non-2xx backend response. Detail holds the server's
// human-readable message when one was provided.
type ErrAPI struct {
	Status int
	Detail string
}

func (e *ErrAPI) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Detail)
}

// ErrNoCart indicates an add-to-cart attempt before a cart session exists
type ErrNoCart struct{}

func (e *ErrNoCart) Error() string {
	return "no cart session available"
}
