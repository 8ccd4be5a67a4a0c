package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Student is a record in the students collection.
// Only name, age and major are required; the store enforces no schema.
type Student struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Age   int                `json:"age" bson:"age"`
	Major string             `json:"major" bson:"major"`
	GPA   *float64           `json:"gpa,omitempty" bson:"gpa,omitempty"`
	Bio   string             `json:"bio,omitempty" bson:"bio,omitempty"`
	// Note is only written by the replace-one catalog operation.
	Note string `json:"note,omitempty" bson:"note,omitempty"`
}

// StudentName is the projected shape returned by name/major-only queries.
type StudentName struct {
	Name  string `json:"name" bson:"name"`
	Major string `json:"major" bson:"major"`
}

// MajorSummary is one group of the GPA-by-major aggregation.
type MajorSummary struct {
	Major  string  `json:"_id" bson:"_id"`
	AvgGPA float64 `json:"avgGPA" bson:"avgGPA"`
	Count  int     `json:"count" bson:"count"`
}

// Float returns a pointer to v, for optional numeric fields.
func Float(v float64) *float64 {
	return &v
}
