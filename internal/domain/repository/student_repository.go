// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"registrar/internal/domain/entity"
)

// Domain-specific errors for student persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrStudentNotFound is returned when no record matches the lookup key.
	ErrStudentNotFound = errors.New("student not found")
	// ErrDuplicateEmail is returned when a write collides with the unique
	// index on the email field.
	ErrDuplicateEmail = errors.New("email already registered")
)

// StudentRepository defines the standard operations for student persistence.
// The backing store owns all persisted state; implementations hold no
// in-memory copy across requests.
type StudentRepository interface {
	// Create persists a new student record. A collision on the email unique
	// index is reported as ErrDuplicateEmail.
	Create(ctx context.Context, student *entity.Student) error

	// FindByEmail retrieves a single student by email, the login key.
	FindByEmail(ctx context.Context, email string) (*entity.Student, error)

	// FindByID retrieves a single student by the opaque generated id.
	FindByID(ctx context.Context, id string) (*entity.Student, error)
}
