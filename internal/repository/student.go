package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"studentsdemo/internal/model"
)

// StudentRepository defines data access for student records.
// No business logic here — strictly persistence operations.
type StudentRepository interface {
	// EnsureIndexes creates the text index used by free-text search.
	EnsureIndexes(ctx context.Context) error

	// Create inserts a student and returns the store-assigned identifier.
	Create(ctx context.Context, s *model.Student) (primitive.ObjectID, error)

	// List returns every student, newest identifier first.
	List(ctx context.Context) ([]model.Student, error)

	// Update sets the non-nil fields on the student with the given id.
	Update(ctx context.Context, id primitive.ObjectID, fields StudentFields) (*UpdateResult, error)

	// Delete removes one student. A missing id is not an error; the count is 0.
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)

	// Search returns students matching every set predicate of f.
	Search(ctx context.Context, f SearchFilter) ([]model.Student, error)

	// DeleteAll removes every student and returns how many were deleted.
	DeleteAll(ctx context.Context) (int64, error)

	// Count returns the number of students.
	Count(ctx context.Context) (int64, error)

	// DistinctMajors returns the set of majors in use.
	DistinctMajors(ctx context.Context) ([]string, error)
}

// StudentFields is a partial update; nil fields are left untouched.
type StudentFields struct {
	Name  *string
	Age   *int
	Major *string
	GPA   *float64
	Bio   *string
	// ClearBio writes bio as null and takes precedence over Bio.
	ClearBio bool
}

// Empty reports whether no field is set.
func (f StudentFields) Empty() bool {
	return f.Name == nil && f.Age == nil && f.Major == nil && f.GPA == nil && f.Bio == nil && !f.ClearBio
}

// SearchFilter combines optional predicates with AND.
type SearchFilter struct {
	Major  string
	MinGPA *float64
	MaxAge *int
}

// UpdateResult reports how many documents matched and changed.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
