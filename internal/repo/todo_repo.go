package repo

import (
	"context"
	"errors"
	"fmt"

	dom "todolist/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidID means the id is not a valid store identifier. Distinct from
// "no document with this id", which surfaces as mongo.ErrNoDocuments.
var ErrInvalidID = errors.New("invalid todo id")

const collectionName = "todos"

type TodoRepo interface {
	ListPage(ctx context.Context, page, limit int) ([]dom.Todo, int64, error)
	GetByID(ctx context.Context, id string) (dom.Todo, error)
	Create(ctx context.Context, draft dom.Draft) (dom.Todo, error)
	Update(ctx context.Context, id string, patch dom.Patch) (dom.Todo, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// todoDoc is the persisted shape. The native _id is renamed to the external
// string id exactly once, in toDomain.
type todoDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	CreatedAt   string             `bson:"createdAt"`
	Deadline    string             `bson:"deadline"`
	Status      string             `bson:"status"`
	Canceled    bool               `bson:"canceled"`
}

func (d todoDoc) toDomain() dom.Todo {
	return dom.Todo{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		Deadline:    d.Deadline,
		Status:      d.Status,
		Canceled:    d.Canceled,
	}
}

// listSort is the fixed compound order for listings: non-canceled first,
// newest first within each group. Not caller-configurable.
var listSort = bson.D{
	{Key: "canceled", Value: 1},
	{Key: "createdAt", Value: -1},
}

type MongoTodoRepo struct {
	col *mongo.Collection
}

func NewMongoTodoRepo(db *mongo.Database) *MongoTodoRepo {
	return &MongoTodoRepo{col: db.Collection(collectionName)}
}

// ListPage returns one page plus the full collection count. Count and fetch
// are two store calls; under concurrent writes total may not match the page.
func (r *MongoTodoRepo) ListPage(ctx context.Context, page, limit int) ([]dom.Todo, int64, error) {
	total, err := r.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, 0, err
	}

	skip := int64(page-1) * int64(limit)
	opts := options.Find().
		SetSort(listSort).
		SetSkip(skip).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var docs []todoDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	list := make([]dom.Todo, len(docs))
	for i := range docs {
		list[i] = docs[i].toDomain()
	}
	return list, total, nil
}

func (r *MongoTodoRepo) GetByID(ctx context.Context, id string) (dom.Todo, error) {
	oid, err := parseID(id)
	if err != nil {
		return dom.Todo{}, err
	}
	var doc todoDoc
	if err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		return dom.Todo{}, err
	}
	return doc.toDomain(), nil
}

func (r *MongoTodoRepo) Create(ctx context.Context, draft dom.Draft) (dom.Todo, error) {
	doc := todoDoc{
		Name:        draft.Name,
		Description: draft.Description,
		CreatedAt:   draft.CreatedAt,
		Deadline:    draft.Deadline,
		Status:      draft.Status,
		Canceled:    draft.Canceled,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return dom.Todo{}, err
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// Update applies a field-level $set of the patch's set fields and returns the
// post-update document. Absent fields keep their prior values; _id and
// createdAt are never part of the patch.
func (r *MongoTodoRepo) Update(ctx context.Context, id string, patch dom.Patch) (dom.Todo, error) {
	oid, err := parseID(id)
	if err != nil {
		return dom.Todo{}, err
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc todoDoc
	err = r.col.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: patch.Fields()}},
		opts,
	).Decode(&doc)
	if err != nil {
		return dom.Todo{}, err
	}
	return doc.toDomain(), nil
}

func (r *MongoTodoRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}
