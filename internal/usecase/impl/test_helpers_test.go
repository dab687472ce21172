package impl

import (
	"io"
	"log/slog"

	mockRepo "registrar/internal/mocks/repository"
	mockSvc "registrar/internal/mocks/service"
	"registrar/internal/usecase"

	"testing"
)

// studentServiceFixtures holds all test dependencies for student service tests.
type studentServiceFixtures struct {
	service     usecase.StudentUsecase
	studentRepo *mockRepo.MockStudentRepository
	hasher      *mockSvc.MockPasswordHasher
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestStudentService(t *testing.T) studentServiceFixtures {
	studentRepo := mockRepo.NewMockStudentRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewStudentService(StudentServiceParams{
		StudentRepo: studentRepo,
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	})

	return studentServiceFixtures{
		service:     service,
		studentRepo: studentRepo,
		hasher:      hasher,
	}
}
