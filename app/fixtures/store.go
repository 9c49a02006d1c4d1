// Package fixtures holds the seed dataset the application serves and
// the read-only store it is queried through. The dataset is built once
// at startup and injected wherever it is needed; nothing mutates it
// afterwards, so the store is safe for concurrent handlers.
package fixtures

import (
	"errors"

	"github.com/google/uuid"

	"github.com/xstrengthofonex/edustudio/app/models"
)

// ErrStudentNotFound is returned when no student matches a requested
// identifier. A malformed identifier fails the same way; it can never
// match a fixture.
var ErrStudentNotFound = errors.New("student not found")

// Store is a read-only collection of students queried by identifier.
type Store struct {
	students []models.Student
	byID     map[uuid.UUID]models.Student
}

// NewStore builds a store over the given students. The slice order is
// preserved by ListAllStudents.
func NewStore(students []models.Student) *Store {
	byID := make(map[uuid.UUID]models.Student, len(students))
	for _, s := range students {
		byID[s.ID] = s
	}
	return &Store{students: students, byID: byID}
}

// FindStudentByID looks up a student by the string form of its UUID.
// Unknown and malformed identifiers both return ErrStudentNotFound.
func (st *Store) FindStudentByID(id string) (models.Student, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return models.Student{}, ErrStudentNotFound
	}
	s, ok := st.byID[parsed]
	if !ok {
		return models.Student{}, ErrStudentNotFound
	}
	return s, nil
}

// ListAllStudents returns all students in seed order.
func (st *Store) ListAllStudents() []models.Student {
	students := make([]models.Student, len(st.students))
	copy(students, st.students)
	return students
}
