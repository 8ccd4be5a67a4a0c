// Package catalog holds the fixed set of demonstration operations run against the students collection.
package catalog

// Operation identifies one catalog entry. The set is closed.
type Operation int

const (
	CreateOne Operation = iota
	CreateMany
	FindAll
	FindWithFilter
	FindOne
	UpdateOne
	UpdateMany
	UpsertExample
	ReplaceOne
	DeleteOne
	DeleteMany
	CountDocs
	DistinctField
	AggregateSample
	BulkWriteExample
	ProjectionSortLimit
	TextSearch
	TransactionExample

	operationCount
)

// Count is the number of operations in the catalog.
const Count = int(operationCount)

// operationNames is indexed by Operation; its length pins the table to the enum.
var operationNames = [operationCount]string{
	CreateOne:           "createOne",
	CreateMany:          "createMany",
	FindAll:             "findAll",
	FindWithFilter:      "findWithFilter",
	FindOne:             "findOne",
	UpdateOne:           "updateOne",
	UpdateMany:          "updateMany",
	UpsertExample:       "upsertExample",
	ReplaceOne:          "replaceOne",
	DeleteOne:           "deleteOne",
	DeleteMany:          "deleteMany",
	CountDocs:           "countDocs",
	DistinctField:       "distinctField",
	AggregateSample:     "aggregateSample",
	BulkWriteExample:    "bulkWriteExample",
	ProjectionSortLimit: "projectionSortLimit",
	TextSearch:          "textSearch",
	TransactionExample:  "transactionExample",
}

func (o Operation) String() string {
	if !o.Valid() {
		return "unknown"
	}
	return operationNames[o]
}

// Valid reports whether o is a catalog member.
func (o Operation) Valid() bool {
	return o >= 0 && o < operationCount
}

// Parse resolves an operation by its exact name.
func Parse(name string) (Operation, bool) {
	for i, n := range operationNames {
		if n == name {
			return Operation(i), true
		}
	}
	return 0, false
}

// All returns every operation in run-all order.
func All() []Operation {
	ops := make([]Operation, operationCount)
	for i := range ops {
		ops[i] = Operation(i)
	}
	return ops
}

// Names returns every operation name in run-all order.
func Names() []string {
	names := make([]string, operationCount)
	copy(names, operationNames[:])
	return names
}
