// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"registrar/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new student account.
type RegisterInput struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	StudentNumber string `json:"student_id" validate:"required"`
}

// LoginInput defines the data required for a student to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the generated opaque id of the new record.
// No password or hash is ever echoed back.
type RegisterOutput struct {
	ID string
}

// LoginOutput returns the student's identity after a successful login.
// No token or session artifact is issued; callers use the id directly.
type LoginOutput struct {
	ID   string
	Name string
}

// StudentUsecase defines the interface for student-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type StudentUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, id string) (*entity.PublicStudent, error)
}
