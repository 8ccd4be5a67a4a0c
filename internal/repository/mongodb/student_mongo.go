package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"studentsdemo/internal/model"
	"studentsdemo/internal/repository"
)

// DefaultCollection is the collection every component works against unless configured otherwise.
const DefaultCollection = "students"

// StudentMongo is a MongoDB implementation of repository.StudentRepository.
type StudentMongo struct {
	coll *mongo.Collection
}

// NewStudentMongo creates a repository over db.collection.
func NewStudentMongo(db *mongo.Database, collection string) *StudentMongo {
	if collection == "" {
		collection = DefaultCollection
	}
	return &StudentMongo{coll: db.Collection(collection)}
}

var _ repository.StudentRepository = (*StudentMongo)(nil)

// TextIndex is the index backing $text queries over name and bio.
func TextIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: "text"}, {Key: "bio", Value: "text"}},
	}
}

// EnsureTextIndex creates TextIndex on coll. Creating an identical index again is a no-op on the server.
func EnsureTextIndex(ctx context.Context, coll *mongo.Collection) error {
	if _, err := coll.Indexes().CreateOne(ctx, TextIndex()); err != nil {
		return fmt.Errorf("create text index: %w", err)
	}
	return nil
}

// EnsureIndexes creates the text index on the students collection.
func (r *StudentMongo) EnsureIndexes(ctx context.Context) error {
	return EnsureTextIndex(ctx, r.coll)
}

// Create inserts s and writes the generated id back into it.
func (r *StudentMongo) Create(ctx context.Context, s *model.Student) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, s)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	s.ID = id
	return id, nil
}

// List returns every student sorted by _id descending, which is newest first for ObjectIDs.
func (r *StudentMongo) List(ctx context.Context) ([]model.Student, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	return r.find(ctx, bson.D{}, opts)
}

// Update applies $set with the provided fields.
func (r *StudentMongo) Update(ctx context.Context, id primitive.ObjectID, fields repository.StudentFields) (*repository.UpdateResult, error) {
	res, err := r.coll.UpdateByID(ctx, id, bson.D{{Key: "$set", Value: SetDocument(fields)}})
	if err != nil {
		return nil, err
	}
	return &repository.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// Delete removes the student with id.
func (r *StudentMongo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Search runs the conjunctive filter built by SearchQuery.
func (r *StudentMongo) Search(ctx context.Context, f repository.SearchFilter) ([]model.Student, error) {
	return r.find(ctx, SearchQuery(f))
}

// DeleteAll empties the collection, keeping its indexes.
func (r *StudentMongo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the exact document count.
func (r *StudentMongo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

// DistinctMajors returns the distinct string values of the major field.
func (r *StudentMongo) DistinctMajors(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "major", bson.D{})
	if err != nil {
		return nil, err
	}
	majors := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			majors = append(majors, s)
		}
	}
	return majors, nil
}

func (r *StudentMongo) find(ctx context.Context, filter any, opts ...*options.FindOptions) ([]model.Student, error) {
	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]model.Student, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchQuery translates f into a filter document. Unset predicates are omitted,
// and the remaining ones are implicitly ANDed by the server.
func SearchQuery(f repository.SearchFilter) bson.D {
	q := bson.D{}
	if f.Major != "" {
		q = append(q, bson.E{Key: "major", Value: f.Major})
	}
	if f.MinGPA != nil {
		q = append(q, bson.E{Key: "gpa", Value: bson.D{{Key: "$gte", Value: *f.MinGPA}}})
	}
	if f.MaxAge != nil {
		q = append(q, bson.E{Key: "age", Value: bson.D{{Key: "$lte", Value: *f.MaxAge}}})
	}
	return q
}

// SetDocument builds the $set body for a partial update.
func SetDocument(f repository.StudentFields) bson.D {
	set := bson.D{}
	if f.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *f.Name})
	}
	if f.Age != nil {
		set = append(set, bson.E{Key: "age", Value: *f.Age})
	}
	if f.Major != nil {
		set = append(set, bson.E{Key: "major", Value: *f.Major})
	}
	if f.GPA != nil {
		set = append(set, bson.E{Key: "gpa", Value: *f.GPA})
	}
	switch {
	case f.ClearBio:
		set = append(set, bson.E{Key: "bio", Value: nil})
	case f.Bio != nil:
		set = append(set, bson.E{Key: "bio", Value: *f.Bio})
	}
	return set
}
