package impl

import (
	"context"
	"testing"
	"time"

	"registrar/internal/domain/entity"
	domainerrors "registrar/internal/domain/errors"
	"registrar/internal/domain/repository"
	"registrar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStudentService_Register_Success(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		Password:      "s3cret",
		StudentNumber: "S100",
	}

	fx.studentRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrStudentNotFound)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	var created *entity.Student
	fx.studentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Student")).
		Run(func(ctx context.Context, student *entity.Student) {
			created = student
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.NotEmpty(t, output.ID)

	require.NotNil(t, created)
	assert.Equal(t, output.ID, created.ID)
	assert.Equal(t, input.Name, created.Name)
	assert.Equal(t, input.Email, created.Email)
	assert.Equal(t, input.StudentNumber, created.StudentNumber)
	// The plaintext never reaches the store.
	assert.Equal(t, "hashed_password", created.PasswordHash)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, time.UTC, created.CreatedAt.Location())

	// The generated id is a well-formed opaque uuid.
	_, err = uuid.Parse(output.ID)
	assert.NoError(t, err)
}

func TestStudentService_Register_GeneratesUniqueIDs(t *testing.T) {
	fx := createTestStudentService(t)
	ctx := context.Background()

	fx.studentRepo.EXPECT().
		FindByEmail(ctx, mock.AnythingOfType("string")).
		Return(nil, repository.ErrStudentNotFound)
	fx.hasher.EXPECT().Hash("s3cret").Return("hashed_password", nil)
	fx.studentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Student")).
		Return(nil)

	first, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: "s3cret", StudentNumber: "S100",
	})
	require.NoError(t, err)

	second, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name: "Grace", Email: "grace@example.com", Password: "s3cret", StudentNumber: "S101",
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestStudentService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		Password:      "s3cret",
		StudentNumber: "S100",
	}

	fx.studentRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.Student{ID: uuid.NewString(), Email: input.Email}, nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestStudentService_Register_DuplicateEmailRace(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		Password:      "s3cret",
		StudentNumber: "S100",
	}

	// The pre-check passes, but a concurrent registration wins the insert.
	fx.studentRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrStudentNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.studentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Student")).
		Return(repository.ErrDuplicateEmail)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestStudentService_Register_HashFailure(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		Password:      "s3cret",
		StudentNumber: "S100",
	}

	fx.studentRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrStudentNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("cost out of range"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestStudentService_Login_Success(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	student := &entity.Student{
		ID:           uuid.NewString(),
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "hashed_password",
	}

	fx.studentRepo.EXPECT().
		FindByEmail(ctx, student.Email).
		Return(student, nil)
	fx.hasher.EXPECT().Check("s3cret", student.PasswordHash).Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    student.Email,
		Password: "s3cret",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, student.ID, output.ID)
	assert.Equal(t, student.Name, output.Name)
}

func TestStudentService_Login_WrongPassword(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	student := &entity.Student{
		ID:           uuid.NewString(),
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "hashed_password",
	}

	fx.studentRepo.EXPECT().
		FindByEmail(ctx, student.Email).
		Return(student, nil)
	fx.hasher.EXPECT().Check("wrong", student.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    student.Email,
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestStudentService_Login_UnknownEmail(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()

	fx.studentRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrStudentNotFound)
	// The timing-equalizing compare still runs against the reference hash.
	fx.hasher.EXPECT().Check("whatever", timingReferenceHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestStudentService_Login_SameErrorForBothFailures(t *testing.T) {
	fx := createTestStudentService(t)
	ctx := context.Background()

	student := &entity.Student{
		ID:           uuid.NewString(),
		Email:        "ada@example.com",
		PasswordHash: "hashed_password",
	}

	fx.studentRepo.EXPECT().
		FindByEmail(ctx, student.Email).
		Return(student, nil)
	fx.hasher.EXPECT().Check("wrong", student.PasswordHash).Return(false)

	_, wrongPassErr := fx.service.Login(ctx, &usecase.LoginInput{Email: student.Email, Password: "wrong"})

	fx.studentRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrStudentNotFound)
	fx.hasher.EXPECT().Check("wrong", timingReferenceHash).Return(false)

	_, unknownEmailErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "wrong"})

	// Both paths resolve to the identical domain error with no
	// distinguishing detail for the caller.
	require.Error(t, wrongPassErr)
	require.Error(t, unknownEmailErr)
	assert.True(t, errors.Is(wrongPassErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownEmailErr, domainerrors.ErrInvalidCredentials))
}

func TestStudentService_GetProfile_Success(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	student := &entity.Student{
		ID:            uuid.NewString(),
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		StudentNumber: "S100",
		PasswordHash:  "hashed_password",
		CreatedAt:     time.Now().UTC(),
	}

	fx.studentRepo.EXPECT().
		FindByID(ctx, student.ID).
		Return(student, nil)

	profile, err := fx.service.GetProfile(ctx, student.ID)

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, student.ID, profile.ID)
	assert.Equal(t, student.Name, profile.Name)
	assert.Equal(t, student.Email, profile.Email)
	assert.Equal(t, student.StudentNumber, profile.StudentNumber)
	assert.Equal(t, student.CreatedAt, profile.CreatedAt)
}

func TestStudentService_GetProfile_NotFound(t *testing.T) {
	fx := createTestStudentService(t)

	ctx := context.Background()
	id := uuid.NewString()

	fx.studentRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrStudentNotFound)

	profile, err := fx.service.GetProfile(ctx, id)

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrStudentNotFound))
}
