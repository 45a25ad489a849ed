package usecase

import "fmt"

// NotFoundError reports that an entity, or an entity referenced by a
// create/update payload, does not exist. The message names both so the
// caller can tell which reference failed.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id: %d not found", e.Resource, e.ID)
}

// BadRequestError reports a violated domain rule: a duplicate unique
// field, an appointment conflict, or a write that changed nothing.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

func notFound(resource string, id uint) error {
	return &NotFoundError{Resource: resource, ID: id}
}

func badRequest(format string, args ...interface{}) error {
	return &BadRequestError{Message: fmt.Sprintf(format, args...)}
}
