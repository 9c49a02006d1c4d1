package fixtures

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xstrengthofonex/edustudio/app/models"
)

func TestStoreFindStudentByID(t *testing.T) {
	known := models.Student{
		ID:   uuid.MustParse("8f3f55cf-de69-4e70-82d4-aac0ca82d9ee"),
		Name: "이채원",
	}
	store := NewStore([]models.Student{known})

	t.Run("known id", func(t *testing.T) {
		s, err := store.FindStudentByID("8f3f55cf-de69-4e70-82d4-aac0ca82d9ee")
		require.NoError(t, err)
		assert.Equal(t, "이채원", s.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.FindStudentByID("00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := store.FindStudentByID("not-a-uuid")
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := store.FindStudentByID("")
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})
}

func TestStoreListAllStudents(t *testing.T) {
	store := NewStore(Seed())

	students := store.ListAllStudents()

	require.Len(t, students, 3)
	assert.Equal(t, "이채원", students[0].Name)
	assert.Equal(t, "김대현", students[1].Name)
	assert.Equal(t, "박은경", students[2].Name)
}

func TestSeedIsWellFormed(t *testing.T) {
	students := Seed()

	seen := make(map[uuid.UUID]bool)
	for _, s := range students {
		assert.False(t, seen[s.ID], "duplicate student id %s", s.ID)
		seen[s.ID] = true

		for _, a := range s.Attendances {
			assert.NotEqual(t, uuid.Nil, a.Class.ID)
		}
	}
}
