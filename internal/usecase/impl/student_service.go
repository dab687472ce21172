// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "registrar/internal/delivery/context"
	"registrar/internal/domain/entity"
	domainerrors "registrar/internal/domain/errors"
	"registrar/internal/domain/repository"
	"registrar/internal/domain/service"
	"registrar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// timingReferenceHash is a bcrypt hash compared against when login hits an
// unknown email, so that path costs roughly the same as a real password check
// and response timing does not leak account existence.
const timingReferenceHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// studentService implements the StudentUsecase interface.
type studentService struct {
	studentRepo repository.StudentRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// StudentServiceParams holds dependencies for studentService, injected by Fx.
type StudentServiceParams struct {
	fx.In

	StudentRepo repository.StudentRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewStudentService is the constructor for studentService. It receives all dependencies as interfaces.
func NewStudentService(params StudentServiceParams) usecase.StudentUsecase {
	return &studentService{
		studentRepo: params.StudentRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *studentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the student registration process. The email existence
// check runs first for the friendly conflict answer; the unique index on the
// email field backs it up, so two racing registrations cannot both commit.
func (srv *studentService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.studentRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email already registered", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration failed")
	}
	if !errors.Is(err, repository.ErrStudentNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newStudent := &entity.Student{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Email:         input.Email,
		StudentNumber: input.StudentNumber,
		PasswordHash:  hashedPassword,
		CreatedAt:     time.Now().UTC(),
	}

	if err := srv.studentRepo.Create(ctx, newStudent); err != nil {
		// The unique index closed the check-then-write race: a concurrent
		// registration won, report the same conflict as the pre-check.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Registration lost duplicate-email race", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration failed")
		}

		srv.log(ctx).Error("Failed to create student", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create student during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("studentID", newStudent.ID))

	return &usecase.RegisterOutput{ID: newStudent.ID}, nil
}

// Login orchestrates the student login process. Unknown email and wrong
// password produce the same error with no distinguishing detail.
func (srv *studentService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	student, err := srv.studentRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			// Burn a comparable amount of CPU before answering.
			srv.hasher.Check(input.Password, timingReferenceHash)
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find student by email")
	}

	// bcrypt comparison is CPU-bound; it runs on the request goroutine and
	// never holds a store connection.
	if !srv.hasher.Check(input.Password, student.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Debug("Student logged in", slog.String("studentID", student.ID))

	return &usecase.LoginOutput{
		ID:   student.ID,
		Name: student.Name,
	}, nil
}

// GetProfile retrieves the public profile for the given opaque id.
// The password hash never leaves this layer.
func (srv *studentService) GetProfile(ctx context.Context, id string) (*entity.PublicStudent, error) {
	srv.log(ctx).Debug("Getting student profile", slog.String("studentID", id))

	student, err := srv.studentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStudentNotFound, "student not found")
		}

		return nil, errors.Wrap(err, "failed to find student by id")
	}

	return student.Public(), nil
}
