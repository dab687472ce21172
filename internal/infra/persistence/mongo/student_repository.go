package mongo

import (
	"context"

	"registrar/internal/domain/entity"
	"registrar/internal/domain/repository"
	"registrar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// studentRepository implements the repository.StudentRepository interface on
// top of a MongoDB collection.
type studentRepository struct {
	collection *mongo.Collection
}

// NewStudentRepository is the constructor for studentRepository.
// It returns the repository as a repository.StudentRepository interface, adhering to dependency inversion.
func NewStudentRepository(db *mongo.Database) repository.StudentRepository {
	return &studentRepository{
		collection: db.Collection(studentsCollection),
	}
}

// Create persists a new student document. A duplicate-key error from the
// unique email index is translated into the repository sentinel so the
// application layer never sees driver-specific errors.
func (repo *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	studentM := model.FromStudentDomain(student)

	if _, err := repo.collection.InsertOne(ctx, studentM); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to insert student")
	}

	return nil
}

// FindByEmail retrieves a single student by email address.
func (repo *studentRepository) FindByEmail(ctx context.Context, email string) (*entity.Student, error) {
	return repo.findOne(ctx, bson.D{{Key: "email", Value: email}}, "failed to find student by email")
}

// FindByID retrieves a single student by the opaque generated id.
func (repo *studentRepository) FindByID(ctx context.Context, id string) (*entity.Student, error) {
	return repo.findOne(ctx, bson.D{{Key: "id", Value: id}}, "failed to find student by id")
}

func (repo *studentRepository) findOne(ctx context.Context, filter bson.D, wrapMsg string) (*entity.Student, error) {
	var studentM model.StudentModel
	if err := repo.collection.FindOne(ctx, filter).Decode(&studentM); err != nil {
		// If no document matches, return a domain-specific error.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, wrapMsg)
	}

	// Map the persistence document back to a pure domain entity before returning.
	return model.ToStudentDomain(&studentM), nil
}
