package model

import (
	"testing"
	"time"

	"registrar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStudentDomain_StoresCreatedAtAsISOString(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 12, 30, 45, 0, time.FixedZone("CST", 8*3600))

	doc := FromStudentDomain(&entity.Student{
		ID:        "u1",
		Email:     "ada@x.com",
		CreatedAt: createdAt,
	})

	require.NotNil(t, doc)
	// Always persisted in UTC.
	assert.Equal(t, "2024-05-01T04:30:45Z", doc.CreatedAt)

	back := ToStudentDomain(doc)
	require.NotNil(t, back)
	assert.True(t, back.CreatedAt.Equal(createdAt))
}

func TestToStudentDomain_UnparsableCreatedAt(t *testing.T) {
	// Documents written by earlier tooling may carry malformed timestamps;
	// reads must not fail because of them.
	student := ToStudentDomain(&StudentModel{
		ID:        "u1",
		Email:     "ada@x.com",
		CreatedAt: "not-a-timestamp",
	})

	require.NotNil(t, student)
	assert.True(t, student.CreatedAt.IsZero())
	assert.Equal(t, "u1", student.ID)
}

func TestStudentModelMapping_NilSafe(t *testing.T) {
	assert.Nil(t, ToStudentDomain(nil))
	assert.Nil(t, FromStudentDomain(nil))
}
