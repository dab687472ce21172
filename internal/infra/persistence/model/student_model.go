// Package model contains the persistence-layer document definitions.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"registrar/internal/domain/entity"
)

// StudentModel is the document persisted in the students collection.
// The application-level id lives in its own indexed field; the driver's
// object id is kept only as the storage primary key. CreatedAt is stored as
// an ISO-8601 string to stay compatible with the existing data shape.
type StudentModel struct {
	OID           bson.ObjectID `bson:"_id,omitempty"`
	ID            string        `bson:"id"`
	Name          string        `bson:"name"`
	Email         string        `bson:"email"`
	StudentNumber string        `bson:"student_id"`
	PasswordHash  string        `bson:"password"`
	CreatedAt     string        `bson:"created_at"`
}

// ToStudentDomain converts a stored document back to a domain entity.
// An unparsable created_at is mapped to the zero time rather than failing
// the read.
func ToStudentDomain(data *StudentModel) *entity.Student {
	if data == nil {
		return nil
	}

	createdAt, err := time.Parse(time.RFC3339Nano, data.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}

	return &entity.Student{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		StudentNumber: data.StudentNumber,
		PasswordHash:  data.PasswordHash,
		CreatedAt:     createdAt.UTC(),
	}
}

// FromStudentDomain converts a domain entity to its persistence document.
func FromStudentDomain(data *entity.Student) *StudentModel {
	if data == nil {
		return nil
	}

	return &StudentModel{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		StudentNumber: data.StudentNumber,
		PasswordHash:  data.PasswordHash,
		CreatedAt:     data.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
