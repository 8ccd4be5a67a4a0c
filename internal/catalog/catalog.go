package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"studentsdemo/internal/model"
	"studentsdemo/internal/repository/mongodb"
)

// ErrUnknownOperation is returned by Run for values outside the catalog.
var ErrUnknownOperation = errors.New("operation not found")

// Runner executes catalog operations.
type Runner interface {
	// Run executes a single operation and returns its typed result.
	Run(ctx context.Context, op Operation) (any, error)

	// RunAll ensures the text index, then runs every operation in order.
	// A failing operation is recorded and the rest still run.
	RunAll(ctx context.Context) Report
}

type opFunc func(ctx context.Context) (any, error)

// Catalog runs the demonstration operations against one collection.
type Catalog struct {
	coll   *mongo.Collection
	client *mongo.Client
	log    zerolog.Logger

	setup func(ctx context.Context) error
	ops   [operationCount]opFunc
}

var _ Runner = (*Catalog)(nil)

// New binds a catalog to db.collection. The transaction operation uses db's client for sessions.
func New(db *mongo.Database, collection string, log zerolog.Logger) *Catalog {
	if collection == "" {
		collection = mongodb.DefaultCollection
	}
	c := &Catalog{
		coll:   db.Collection(collection),
		client: db.Client(),
		log:    log.With().Str("component", "catalog").Logger(),
	}
	c.setup = func(ctx context.Context) error {
		return mongodb.EnsureTextIndex(ctx, c.coll)
	}
	c.ops = [operationCount]opFunc{
		CreateOne:           c.createOne,
		CreateMany:          c.createMany,
		FindAll:             c.findAll,
		FindWithFilter:      c.findWithFilter,
		FindOne:             c.findOne,
		UpdateOne:           c.updateOne,
		UpdateMany:          c.updateMany,
		UpsertExample:       c.upsertExample,
		ReplaceOne:          c.replaceOne,
		DeleteOne:           c.deleteOne,
		DeleteMany:          c.deleteMany,
		CountDocs:           c.countDocs,
		DistinctField:       c.distinctField,
		AggregateSample:     c.aggregateSample,
		BulkWriteExample:    c.bulkWriteExample,
		ProjectionSortLimit: c.projectionSortLimit,
		TextSearch:          c.textSearch,
		TransactionExample:  c.transactionExample,
	}
	return c
}

// Setup creates the text index the textSearch operation relies on.
func (c *Catalog) Setup(ctx context.Context) error {
	return c.setup(ctx)
}

func (c *Catalog) Run(ctx context.Context, op Operation) (any, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOperation, int(op))
	}
	start := time.Now()
	res, err := c.ops[op](ctx)
	c.log.Debug().
		Str("operation", op.String()).
		Dur("latency", time.Since(start)).
		Bool("success", err == nil).
		Msg("operation finished")
	return res, err
}

func (c *Catalog) RunAll(ctx context.Context) Report {
	var rep Report
	if err := c.setup(ctx); err != nil {
		c.log.Warn().Err(err).Msg("setup failed; running operations anyway")
		rep.SetupError = err.Error()
	}

	rep.Results = make([]Result, 0, operationCount)
	failed := 0
	for _, op := range All() {
		res, err := c.Run(ctx, op)
		if err != nil {
			failed++
			rep.Results = append(rep.Results, Result{Success: false, Operation: op.String(), Error: err.Error()})
			continue
		}
		rep.Results = append(rep.Results, Result{Success: true, Operation: op.String(), Result: res})
	}

	c.log.Info().Int("total", len(rep.Results)).Int("failed", failed).Msg("run-all finished")
	return rep
}

func byName(name string) bson.D {
	return bson.D{{Key: "name", Value: name}}
}

func (c *Catalog) createOne(ctx context.Context) (any, error) {
	res, err := c.coll.InsertOne(ctx, model.Student{
		Name:  "Alice",
		Age:   23,
		Major: "CS",
		GPA:   model.Float(3.7),
		Bio:   "Loves databases",
	})
	if err != nil {
		return nil, err
	}
	return insertOneResult(res), nil
}

func (c *Catalog) createMany(ctx context.Context) (any, error) {
	res, err := c.coll.InsertMany(ctx, []any{
		model.Student{Name: "Bob", Age: 24, Major: "EE", GPA: model.Float(3.4)},
		model.Student{Name: "Carol", Age: 22, Major: "Math", GPA: model.Float(3.9)},
		model.Student{Name: "Dave", Age: 25, Major: "CS", GPA: model.Float(3.2)},
	})
	if err != nil {
		return nil, err
	}
	return insertManyResult(res), nil
}

func (c *Catalog) findAll(ctx context.Context) (any, error) {
	return findStudents(ctx, c.coll, bson.D{})
}

func (c *Catalog) findWithFilter(ctx context.Context) (any, error) {
	return findStudents(ctx, c.coll, bson.D{{Key: "major", Value: "CS"}})
}

// findOne yields a nil result, not an error, when Alice is absent.
func (c *Catalog) findOne(ctx context.Context) (any, error) {
	var s model.Student
	err := c.coll.FindOne(ctx, byName("Alice")).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Catalog) updateOne(ctx context.Context) (any, error) {
	res, err := c.coll.UpdateOne(ctx, byName("Alice"),
		bson.D{{Key: "$set", Value: bson.D{{Key: "gpa", Value: 3.8}}}})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (c *Catalog) updateMany(ctx context.Context) (any, error) {
	res, err := c.coll.UpdateMany(ctx, bson.D{{Key: "major", Value: "CS"}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "gpa", Value: 0.01}}}})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (c *Catalog) upsertExample(ctx context.Context) (any, error) {
	res, err := c.coll.UpdateOne(ctx, byName("Eve"),
		bson.D{{Key: "$set", Value: bson.D{{Key: "age", Value: 21}, {Key: "major", Value: "Bio"}}}},
		options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (c *Catalog) replaceOne(ctx context.Context) (any, error) {
	res, err := c.coll.ReplaceOne(ctx, byName("Bob"), model.Student{
		Name:  "Robert",
		Age:   24,
		Major: "EE",
		Note:  "Replaced doc",
	})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (c *Catalog) deleteOne(ctx context.Context) (any, error) {
	res, err := c.coll.DeleteOne(ctx, byName("Dave"))
	if err != nil {
		return nil, err
	}
	return deleteResult(res), nil
}

func (c *Catalog) deleteMany(ctx context.Context) (any, error) {
	res, err := c.coll.DeleteMany(ctx, bson.D{{Key: "major", Value: "Math"}})
	if err != nil {
		return nil, err
	}
	return deleteResult(res), nil
}

func (c *Catalog) countDocs(ctx context.Context) (any, error) {
	return c.coll.CountDocuments(ctx, bson.D{})
}

func (c *Catalog) distinctField(ctx context.Context) (any, error) {
	values, err := c.coll.Distinct(ctx, "major", bson.D{})
	if err != nil {
		return nil, err
	}
	if values == nil {
		values = []any{}
	}
	return values, nil
}

func (c *Catalog) aggregateSample(ctx context.Context) (any, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "gpa", Value: bson.D{{Key: "$gte", Value: 3.0}}}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$major"},
			{Key: "avgGPA", Value: bson.D{{Key: "$avg", Value: "$gpa"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "avgGPA", Value: -1}}}},
	}
	cur, err := c.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	out := []model.MajorSummary{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Catalog) bulkWriteExample(ctx context.Context) (any, error) {
	models := []mongo.WriteModel{
		mongo.NewInsertOneModel().SetDocument(model.Student{Name: "Frank", Age: 20, Major: "CS"}),
		mongo.NewUpdateOneModel().
			SetFilter(byName("Carol")).
			SetUpdate(bson.D{{Key: "$set", Value: bson.D{{Key: "gpa", Value: 4.0}}}}),
		mongo.NewDeleteOneModel().SetFilter(byName("Robert")),
	}
	res, err := c.coll.BulkWrite(ctx, models)
	if err != nil {
		return nil, err
	}
	return bulkWriteResult(res), nil
}

func (c *Catalog) projectionSortLimit(ctx context.Context) (any, error) {
	opts := options.Find().
		SetProjection(bson.D{{Key: "name", Value: 1}, {Key: "major", Value: 1}, {Key: "_id", Value: 0}}).
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetLimit(5)
	cur, err := c.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	out := []model.StudentName{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Catalog) textSearch(ctx context.Context) (any, error) {
	return findStudents(ctx, c.coll, bson.D{{Key: "$text", Value: bson.D{{Key: "$search", Value: "databases OR loves"}}}})
}

// transactionExample needs a replica set; on a standalone server the driver rejects the
// transaction and the error becomes this operation's failure.
func (c *Catalog) transactionExample(ctx context.Context) (any, error) {
	sess, err := c.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		if _, err := c.coll.InsertOne(sc, bson.D{{Key: "name", Value: "TxnUser"}, {Key: "age", Value: 30}}); err != nil {
			return nil, err
		}
		if _, err := c.coll.UpdateOne(sc, byName("Alice"), bson.D{{Key: "$inc", Value: bson.D{{Key: "age", Value: 1}}}}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return nil, fmt.Errorf("transaction aborted: %w", err)
	}
	return TransactionResult{OK: true}, nil
}

func findStudents(ctx context.Context, coll *mongo.Collection, filter bson.D) ([]model.Student, error) {
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := []model.Student{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
