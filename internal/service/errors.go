package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrLengthMismatch = errors.New("product_ids and quantities must have the same length")
)

// NotFoundError carries the message shown to API clients
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func entityNotFound(entity string) error {
	return &NotFoundError{Message: entity + " not found"}
}

func productMissing(id string) error {
	return &NotFoundError{Message: fmt.Sprintf("Product ID %s not found", id)}
}
