package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"studentsdemo/internal/model"
	"studentsdemo/internal/repository"
)

// ErrInvalidID is returned when an identifier is not a 24-character hex ObjectID.
var ErrInvalidID = errors.New("invalid student id")

// CreateStudentRequest is the body of POST /api/students.
type CreateStudentRequest struct {
	Name  string `json:"name"`
	Age   Number `json:"age" swaggertype:"number"`
	Major string `json:"major"`
	GPA   Number `json:"gpa" swaggertype:"number"`
	Bio   string `json:"bio"`
}

// UpdateStudentRequest is the body of PUT /api/students/:id. Every field is optional;
// empty name/major are ignored, while an explicit bio is written ("" as is, null as null).
type UpdateStudentRequest struct {
	Name  string         `json:"name"`
	Age   Number         `json:"age" swaggertype:"number"`
	Major string         `json:"major"`
	GPA   Number         `json:"gpa" swaggertype:"number"`
	Bio   OptionalString `json:"bio" swaggertype:"string"`
}

// SearchRequest is the body of POST /api/students/search.
type SearchRequest struct {
	Query SearchQuery `json:"query"`
}

// SearchQuery holds the optional search predicates.
type SearchQuery struct {
	Major  string `json:"major"`
	MinGPA Number `json:"minGpa" swaggertype:"number"`
	MaxAge Number `json:"maxAge" swaggertype:"number"`
}

// CreateStudentResult is returned after a successful insert.
type CreateStudentResult struct {
	InsertedID primitive.ObjectID `json:"insertedId" swaggertype:"string"`
	Student    model.Student      `json:"student"`
}

// Stats summarizes the collection.
type Stats struct {
	TotalDocuments int64    `json:"totalDocuments"`
	UniqueMajors   []string `json:"uniqueMajors"`
	Database       string   `json:"database"`
	Collection     string   `json:"collection"`
}

// StudentService defines the use cases for managing student records directly.
type StudentService interface {
	// List returns every student, newest first.
	List(ctx context.Context) ([]model.Student, error)

	// Create validates req and inserts it. Name, age and major are required.
	Create(ctx context.Context, req CreateStudentRequest) (*CreateStudentResult, error)

	// Update applies a partial update. Unknown ids succeed with zero counts.
	Update(ctx context.Context, id string, req UpdateStudentRequest) (*repository.UpdateResult, error)

	// Delete removes one student and returns the deleted count (0 when absent).
	Delete(ctx context.Context, id string) (int64, error)

	// Search filters by exact major, minimum gpa and maximum age, all optional and ANDed.
	Search(ctx context.Context, q SearchQuery) ([]model.Student, error)

	// DeleteAll removes every student.
	DeleteAll(ctx context.Context) (int64, error)

	// Stats returns count, distinct majors and where they were read from.
	Stats(ctx context.Context) (*Stats, error)
}

type studentService struct {
	repo       repository.StudentRepository
	validator  *validator
	database   string
	collection string
}

// NewStudentService constructs a StudentService. database and collection are only reported by Stats.
func NewStudentService(repo repository.StudentRepository, database, collection string) StudentService {
	return &studentService{
		repo:       repo,
		validator:  newValidator(),
		database:   database,
		collection: collection,
	}
}

// studentInput is the coerced create payload the validator runs against.
type studentInput struct {
	Name  string `json:"name" validate:"required"`
	Age   int    `json:"age" validate:"required"`
	Major string `json:"major" validate:"required"`
}

func (s *studentService) List(ctx context.Context) ([]model.Student, error) {
	return s.repo.List(ctx)
}

func (s *studentService) Create(ctx context.Context, req CreateStudentRequest) (*CreateStudentResult, error) {
	fields := map[string]string{}

	in := studentInput{Name: req.Name, Major: req.Major}
	if req.Age.IsSet() {
		age, err := req.Age.Int()
		if err != nil {
			fields["age"] = "age must be a number"
		}
		in.Age = age
	}
	var gpa *float64
	if req.GPA.IsSet() {
		v, err := req.GPA.Float()
		if err != nil {
			fields["gpa"] = "gpa must be a number"
		} else {
			gpa = &v
		}
	}
	s.validator.check(in, fields)
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	student := model.Student{
		Name:  in.Name,
		Age:   in.Age,
		Major: in.Major,
		GPA:   gpa,
		Bio:   req.Bio,
	}
	id, err := s.repo.Create(ctx, &student)
	if err != nil {
		return nil, fmt.Errorf("insert student: %w", err)
	}
	student.ID = id
	return &CreateStudentResult{InsertedID: id, Student: student}, nil
}

func (s *studentService) Update(ctx context.Context, id string, req UpdateStudentRequest) (*repository.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{}
	var patch repository.StudentFields
	if req.Name != "" {
		patch.Name = &req.Name
	}
	if req.Major != "" {
		patch.Major = &req.Major
	}
	if req.Age.IsSet() {
		age, err := req.Age.Int()
		if err != nil {
			fields["age"] = "age must be a number"
		} else {
			patch.Age = &age
		}
	}
	if req.GPA.IsSet() {
		gpa, err := req.GPA.Float()
		if err != nil {
			fields["gpa"] = "gpa must be a number"
		} else {
			patch.GPA = &gpa
		}
	}
	switch {
	case req.Bio.IsNull():
		patch.ClearBio = true
	case req.Bio.IsSet():
		bio := req.Bio.Value()
		patch.Bio = &bio
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	if patch.Empty() {
		return nil, &ValidationError{Fields: map[string]string{"detail": "at least one field must be provided"}}
	}
	return s.repo.Update(ctx, oid, patch)
}

func (s *studentService) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	return s.repo.Delete(ctx, oid)
}

func (s *studentService) Search(ctx context.Context, q SearchQuery) ([]model.Student, error) {
	fields := map[string]string{}
	filter := repository.SearchFilter{Major: q.Major}
	if q.MinGPA.IsSet() {
		v, err := q.MinGPA.Float()
		if err != nil {
			fields["minGpa"] = "minGpa must be a number"
		} else {
			filter.MinGPA = &v
		}
	}
	if q.MaxAge.IsSet() {
		v, err := q.MaxAge.Int()
		if err != nil {
			fields["maxAge"] = "maxAge must be a number"
		} else {
			filter.MaxAge = &v
		}
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	return s.repo.Search(ctx, filter)
}

func (s *studentService) DeleteAll(ctx context.Context) (int64, error) {
	return s.repo.DeleteAll(ctx)
}

func (s *studentService) Stats(ctx context.Context) (*Stats, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count students: %w", err)
	}
	majors, err := s.repo.DistinctMajors(ctx)
	if err != nil {
		return nil, fmt.Errorf("distinct majors: %w", err)
	}
	return &Stats{
		TotalDocuments: count,
		UniqueMajors:   majors,
		Database:       s.database,
		Collection:     s.collection,
	}, nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}
