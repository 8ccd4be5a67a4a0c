package catalog

import "go.mongodb.org/mongo-driver/mongo"

// The catalog never lowers the default write concern, so every successful write below is acknowledged.

// InsertOneResult is returned by createOne.
type InsertOneResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId" swaggertype:"string"`
}

// InsertManyResult is returned by createMany.
type InsertManyResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	InsertedCount int   `json:"insertedCount"`
	InsertedIDs   []any `json:"insertedIds" swaggertype:"array,string"`
}

// UpdateResult is returned by the update, upsert and replace operations.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId" swaggertype:"string"`
}

// DeleteResult is returned by deleteOne and deleteMany.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// BulkWriteResult is returned by bulkWriteExample.
type BulkWriteResult struct {
	Acknowledged  bool          `json:"acknowledged"`
	InsertedCount int64         `json:"insertedCount"`
	MatchedCount  int64         `json:"matchedCount"`
	ModifiedCount int64         `json:"modifiedCount"`
	DeletedCount  int64         `json:"deletedCount"`
	UpsertedCount int64         `json:"upsertedCount"`
	UpsertedIDs   map[int64]any `json:"upsertedIds" swaggertype:"object"`
}

// TransactionResult is returned by transactionExample once the transaction commits.
type TransactionResult struct {
	OK bool `json:"ok"`
}

// Result is one entry of a run-all report.
type Result struct {
	Success   bool   `json:"success"`
	Operation string `json:"operation"`
	Result    any    `json:"result,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Report is the outcome of RunAll. It always holds one Result per operation, in catalog order.
type Report struct {
	Results []Result `json:"results"`
	// SetupError is set when index creation failed; the operations still ran.
	SetupError string `json:"setupError,omitempty"`
}

func insertOneResult(r *mongo.InsertOneResult) InsertOneResult {
	return InsertOneResult{Acknowledged: true, InsertedID: r.InsertedID}
}

func insertManyResult(r *mongo.InsertManyResult) InsertManyResult {
	return InsertManyResult{Acknowledged: true, InsertedCount: len(r.InsertedIDs), InsertedIDs: r.InsertedIDs}
}

func updateResult(r *mongo.UpdateResult) UpdateResult {
	return UpdateResult{
		Acknowledged:  true,
		MatchedCount:  r.MatchedCount,
		ModifiedCount: r.ModifiedCount,
		UpsertedCount: r.UpsertedCount,
		UpsertedID:    r.UpsertedID,
	}
}

func deleteResult(r *mongo.DeleteResult) DeleteResult {
	return DeleteResult{Acknowledged: true, DeletedCount: r.DeletedCount}
}

func bulkWriteResult(r *mongo.BulkWriteResult) BulkWriteResult {
	ids := r.UpsertedIDs
	if ids == nil {
		ids = map[int64]any{}
	}
	return BulkWriteResult{
		Acknowledged:  true,
		InsertedCount: r.InsertedCount,
		MatchedCount:  r.MatchedCount,
		ModifiedCount: r.ModifiedCount,
		DeletedCount:  r.DeletedCount,
		UpsertedCount: r.UpsertedCount,
		UpsertedIDs:   ids,
	}
}
