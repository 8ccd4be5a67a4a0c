package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"studentsdemo/internal/model"
)

const ns = "nosql_demo.students"

// fakeCatalog returns a catalog whose operations record their call order instead of touching a store.
func fakeCatalog(setupErr error, failing map[Operation]error, calls *[]string) *Catalog {
	c := &Catalog{log: zerolog.Nop()}
	c.setup = func(context.Context) error {
		*calls = append(*calls, "setup")
		return setupErr
	}
	for _, op := range All() {
		op := op
		c.ops[op] = func(context.Context) (any, error) {
			*calls = append(*calls, op.String())
			if err, ok := failing[op]; ok {
				return nil, err
			}
			return op.String() + "-ok", nil
		}
	}
	return c
}

func TestCatalog_RunAll(t *testing.T) {
	t.Run("runs setup then every operation in order", func(t *testing.T) {
		var calls []string
		c := fakeCatalog(nil, nil, &calls)

		rep := c.RunAll(context.Background())

		require.Len(t, rep.Results, 18)
		assert.Empty(t, rep.SetupError)
		assert.Equal(t, append([]string{"setup"}, Names()...), calls)
		for i, r := range rep.Results {
			assert.True(t, r.Success)
			assert.Equal(t, Names()[i], r.Operation)
			assert.Equal(t, Names()[i]+"-ok", r.Result)
		}
	})

	t.Run("failures are independent", func(t *testing.T) {
		var calls []string
		c := fakeCatalog(nil, map[Operation]error{
			FindOne:            errors.New("boom"),
			TransactionExample: errors.New("Transaction numbers are only allowed on a replica set member or mongos"),
		}, &calls)

		rep := c.RunAll(context.Background())

		require.Len(t, rep.Results, 18)
		assert.False(t, rep.Results[FindOne].Success)
		assert.Equal(t, "boom", rep.Results[FindOne].Error)
		assert.Nil(t, rep.Results[FindOne].Result)
		assert.True(t, rep.Results[UpdateOne].Success)
		assert.False(t, rep.Results[TransactionExample].Success)
		assert.Len(t, calls, 19)
	})

	t.Run("setup failure is reported and operations still run", func(t *testing.T) {
		var calls []string
		c := fakeCatalog(errors.New("index build failed"), nil, &calls)

		rep := c.RunAll(context.Background())

		assert.Equal(t, "index build failed", rep.SetupError)
		assert.Len(t, rep.Results, 18)
		assert.Len(t, calls, 19)
	})
}

func TestCatalog_RunUnknown(t *testing.T) {
	var calls []string
	c := fakeCatalog(nil, nil, &calls)

	_, err := c.Run(context.Background(), Operation(42))
	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.Empty(t, calls)
}

func TestCatalog_Operations(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("createOne", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		res, err := c.Run(ctx, CreateOne)
		require.NoError(mt, err)

		r, ok := res.(InsertOneResult)
		require.True(mt, ok)
		assert.True(mt, r.Acknowledged)
		assert.IsType(mt, primitive.ObjectID{}, r.InsertedID)
	})

	mt.Run("createMany", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		res, err := c.Run(ctx, CreateMany)
		require.NoError(mt, err)
		assert.Equal(mt, 3, res.(InsertManyResult).InsertedCount)
	})

	mt.Run("findWithFilter", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Alice"}, {Key: "age", Value: int32(23)}, {Key: "major", Value: "CS"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Dave"}, {Key: "age", Value: int32(25)}, {Key: "major", Value: "CS"}},
		))

		res, err := c.Run(ctx, FindWithFilter)
		require.NoError(mt, err)
		students := res.([]model.Student)
		require.Len(mt, students, 2)
		assert.Equal(mt, "Dave", students[1].Name)
	})

	mt.Run("findOne absent is null", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		res, err := c.Run(ctx, FindOne)
		require.NoError(mt, err)
		assert.Nil(mt, res)
	})

	mt.Run("upsertExample", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(1)},
			bson.E{Key: "nModified", Value: int32(0)},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: int32(0)}, {Key: "_id", Value: id}}}},
		))

		res, err := c.Run(ctx, UpsertExample)
		require.NoError(mt, err)
		r := res.(UpdateResult)
		assert.Equal(mt, int64(1), r.UpsertedCount)
		assert.Equal(mt, int64(0), r.MatchedCount)
		assert.Equal(mt, id, r.UpsertedID)
	})

	mt.Run("deleteOne", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}))

		res, err := c.Run(ctx, DeleteOne)
		require.NoError(mt, err)
		assert.Equal(mt, DeleteResult{Acknowledged: true, DeletedCount: 1}, res)
	})

	mt.Run("countDocs", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(4)}}))

		res, err := c.Run(ctx, CountDocs)
		require.NoError(mt, err)
		assert.Equal(mt, int64(4), res)
	})

	mt.Run("distinctField", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "values", Value: bson.A{"CS", "EE", "Math"}}))

		res, err := c.Run(ctx, DistinctField)
		require.NoError(mt, err)
		assert.Equal(mt, []any{"CS", "EE", "Math"}, res)
	})

	mt.Run("aggregateSample", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "Math"}, {Key: "avgGPA", Value: 3.9}, {Key: "count", Value: int32(1)}},
			bson.D{{Key: "_id", Value: "CS"}, {Key: "avgGPA", Value: 3.5}, {Key: "count", Value: int32(2)}},
		))

		res, err := c.Run(ctx, AggregateSample)
		require.NoError(mt, err)
		assert.Equal(mt, []model.MajorSummary{
			{Major: "Math", AvgGPA: 3.9, Count: 1},
			{Major: "CS", AvgGPA: 3.5, Count: 2},
		}, res)
	})

	mt.Run("projectionSortLimit", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "name", Value: "Alice"}, {Key: "major", Value: "CS"}},
			bson.D{{Key: "name", Value: "Carol"}, {Key: "major", Value: "Math"}},
		))

		res, err := c.Run(ctx, ProjectionSortLimit)
		require.NoError(mt, err)
		assert.Equal(mt, []model.StudentName{{Name: "Alice", Major: "CS"}, {Name: "Carol", Major: "Math"}}, res)
	})

	mt.Run("command error surfaces", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "text index required for $text query",
		}))

		_, err := c.Run(ctx, TextSearch)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "text index required")
	})

	mt.Run("findAll", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Alice"}, {Key: "age", Value: int32(23)}, {Key: "major", Value: "CS"}},
		))

		res, err := c.Run(ctx, FindAll)
		require.NoError(mt, err)
		students := res.([]model.Student)
		require.Len(mt, students, 1)
		assert.Equal(mt, "Alice", students[0].Name)
		assert.Equal(mt, "find", mt.GetStartedEvent().CommandName)
	})

	mt.Run("findAll empty collection is an empty list", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		res, err := c.Run(ctx, FindAll)
		require.NoError(mt, err)
		assert.Equal(mt, []model.Student{}, res)
	})

	mt.Run("updateOne", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(1)},
			bson.E{Key: "nModified", Value: int32(1)},
		))

		res, err := c.Run(ctx, UpdateOne)
		require.NoError(mt, err)
		assert.Equal(mt, UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, res)
	})

	mt.Run("updateMany", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(2)},
			bson.E{Key: "nModified", Value: int32(2)},
		))

		res, err := c.Run(ctx, UpdateMany)
		require.NoError(mt, err)
		assert.Equal(mt, UpdateResult{Acknowledged: true, MatchedCount: 2, ModifiedCount: 2}, res)
	})

	mt.Run("replaceOne", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(1)},
			bson.E{Key: "nModified", Value: int32(1)},
		))

		res, err := c.Run(ctx, ReplaceOne)
		require.NoError(mt, err)
		assert.Equal(mt, UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, res)
		assert.Equal(mt, "update", mt.GetStartedEvent().CommandName)
	})

	mt.Run("bulkWriteExample", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}, bson.E{Key: "nModified", Value: int32(1)}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}),
		)

		res, err := c.Run(ctx, BulkWriteExample)
		require.NoError(mt, err)
		assert.Equal(mt, BulkWriteResult{
			Acknowledged:  true,
			InsertedCount: 1,
			MatchedCount:  1,
			ModifiedCount: 1,
			DeletedCount:  0,
			UpsertedIDs:   map[int64]any{},
		}, res)
		assert.Equal(mt, []string{"insert", "update", "delete"}, commandNames(mt))
	})

	mt.Run("textSearch", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Alice"}, {Key: "bio", Value: "Loves databases"}},
		))

		res, err := c.Run(ctx, TextSearch)
		require.NoError(mt, err)
		students := res.([]model.Student)
		require.Len(mt, students, 1)
		assert.Equal(mt, "Loves databases", students[0].Bio)
	})

	mt.Run("transactionExample commits", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}, bson.E{Key: "nModified", Value: int32(1)}),
			mtest.CreateSuccessResponse(),
		)

		res, err := c.Run(ctx, TransactionExample)
		require.NoError(mt, err)
		assert.Equal(mt, TransactionResult{OK: true}, res)
		assert.Equal(mt, []string{"insert", "update", "commitTransaction"}, commandNames(mt))
	})

	mt.Run("transactionExample aborts on failed step", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code:    20,
				Name:    "IllegalOperation",
				Message: "Transaction numbers are only allowed on a replica set member or mongos",
			}),
			mtest.CreateSuccessResponse(),
		)

		res, err := c.Run(ctx, TransactionExample)
		require.Error(mt, err)
		assert.Nil(mt, res)
		assert.True(mt, strings.HasPrefix(err.Error(), "transaction aborted: "))
		assert.Contains(mt, err.Error(), "replica set member")
		assert.Equal(mt, []string{"insert", "abortTransaction"}, commandNames(mt))
	})

	mt.Run("setup creates text index", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, c.Setup(ctx))
		assert.Equal(mt, "createIndexes", mt.GetStartedEvent().CommandName)
	})

	mt.Run("setup failure is wrapped like the repository's", func(mt *mtest.T) {
		c := New(mt.DB, "students", zerolog.Nop())
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    85,
			Name:    "IndexOptionsConflict",
			Message: "index already exists with different options",
		}))

		err := c.Setup(ctx)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "create text index")
	})
}

func commandNames(mt *mtest.T) []string {
	var names []string
	for _, evt := range mt.GetAllStartedEvents() {
		names = append(names, evt.CommandName)
	}
	return names
}
