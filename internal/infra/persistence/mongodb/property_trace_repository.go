package mongodb

import (
	"context"

	"million/internal/domain/entity"
	"million/internal/domain/repository"
	"million/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// propertyTraceRepository implements the repository.PropertyTraceRepository interface.
type propertyTraceRepository struct {
	collection *mongo.Collection
}

// NewPropertyTraceRepository is the constructor for propertyTraceRepository.
func NewPropertyTraceRepository(db *mongo.Database) repository.PropertyTraceRepository {
	return &propertyTraceRepository{
		collection: db.Collection(model.PropertyTraceModel{}.CollectionName()),
	}
}

// FindByProperty retrieves the traces of a property, most recent sale first.
func (repo *propertyTraceRepository) FindByProperty(ctx context.Context, propertyID string) ([]*entity.PropertyTrace, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dateSale", Value: -1}})

	cursor, err := repo.collection.Find(ctx, bson.M{"idProperty": propertyID}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find property traces")
	}
	defer cursor.Close(ctx)

	var models []*model.PropertyTraceModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode property traces")
	}

	traces := make([]*entity.PropertyTrace, 0, len(models))
	for _, traceM := range models {
		traces = append(traces, toPropertyTraceDomain(traceM))
	}

	return traces, nil
}

// Create persists a new trace record and fills in the generated ID.
func (repo *propertyTraceRepository) Create(ctx context.Context, trace *entity.PropertyTrace) error {
	traceM := &model.PropertyTraceModel{
		ID:         primitive.NewObjectID(),
		IDProperty: trace.IDProperty,
		DateSale:   trace.DateSale,
		Name:       trace.Name,
		Value:      trace.Value,
		Tax:        trace.Tax,
	}

	if _, err := repo.collection.InsertOne(ctx, traceM); err != nil {
		return errors.Wrap(err, "failed to insert property trace")
	}

	trace.ID = traceM.ID.Hex()

	return nil
}

// toPropertyTraceDomain maps the persistence model back to a pure domain entity.
func toPropertyTraceDomain(traceM *model.PropertyTraceModel) *entity.PropertyTrace {
	return &entity.PropertyTrace{
		ID:         traceM.ID.Hex(),
		IDProperty: traceM.IDProperty,
		DateSale:   traceM.DateSale,
		Name:       traceM.Name,
		Value:      traceM.Value,
		Tax:        traceM.Tax,
	}
}
