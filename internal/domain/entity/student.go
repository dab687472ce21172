// Package entity contains the core domain objects of the registrar.
package entity

import "time"

// Student is the aggregate root for a registered student account.
// ID is an opaque identifier generated at registration time and never
// reassigned. Email is the login key and must be unique across all records.
// StudentNumber is assigned externally (e.g. by the university) and is not
// validated for uniqueness here.
type Student struct {
	ID            string
	Name          string
	Email         string
	StudentNumber string
	PasswordHash  string
	CreatedAt     time.Time
}

// PublicStudent is the read-model exposed by profile lookups.
// It carries every stored field except the password hash.
type PublicStudent struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	StudentNumber string    `json:"student_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// Public strips the credential material from the record.
func (s *Student) Public() *PublicStudent {
	return &PublicStudent{
		ID:            s.ID,
		Name:          s.Name,
		Email:         s.Email,
		StudentNumber: s.StudentNumber,
		CreatedAt:     s.CreatedAt,
	}
}
