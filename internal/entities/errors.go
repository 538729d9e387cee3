// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument signals a malformed request argument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrValidation signals failed input validation of an entity.
	ErrValidation = errors.New("validation failed")
	// ErrReferenceNotFound signals a task pointing at a missing project or member.
	ErrReferenceNotFound = errors.New("reference not found")
	// ErrProjectNotFound signals missing project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTaskNotFound signals missing task.
	ErrTaskNotFound = errors.New("task not found")
	// ErrMemberNotFound signals missing team member.
	ErrMemberNotFound = errors.New("team member not found")
	// ErrSessionNotFound signals an unknown or expired session.
	ErrSessionNotFound = errors.New("session not found")
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every rejected field of one entity input.
type ValidationError struct {
	Entity string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(parts, "; "))
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// ReferenceNotFoundError names the dangling reference of a task.
type ReferenceNotFoundError struct {
	Kind string
	ID   int64
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Kind, e.ID)
}

// Unwrap lets errors.Is match ErrReferenceNotFound.
func (e *ReferenceNotFoundError) Unwrap() error { return ErrReferenceNotFound }

type fieldChecker struct {
	entity string
	fields []FieldError
}

func newFieldChecker(entity string) *fieldChecker {
	return &fieldChecker{entity: entity}
}

func (c *fieldChecker) check(ok bool, field, msg string) {
	if !ok {
		c.fields = append(c.fields, FieldError{Field: field, Message: msg})
	}
}

func (c *fieldChecker) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Entity: c.entity, Fields: c.fields}
}
