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

// propertyImageRepository implements the repository.PropertyImageRepository interface.
type propertyImageRepository struct {
	collection *mongo.Collection
}

// NewPropertyImageRepository is the constructor for propertyImageRepository.
func NewPropertyImageRepository(db *mongo.Database) repository.PropertyImageRepository {
	return &propertyImageRepository{
		collection: db.Collection(model.PropertyImageModel{}.CollectionName()),
	}
}

func enabledByProperty(propertyID string) bson.M {
	return bson.M{
		"idProperty": propertyID,
		"enabled":    true,
	}
}

// FindEnabledByProperty retrieves the enabled images of a property in
// insertion order.
func (repo *propertyImageRepository) FindEnabledByProperty(ctx context.Context, propertyID string) ([]*entity.PropertyImage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := repo.collection.Find(ctx, enabledByProperty(propertyID), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find property images")
	}
	defer cursor.Close(ctx)

	var models []*model.PropertyImageModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode property images")
	}

	images := make([]*entity.PropertyImage, 0, len(models))
	for _, imageM := range models {
		images = append(images, toPropertyImageDomain(imageM))
	}

	return images, nil
}

// FindFirstEnabledByProperty retrieves the representative thumbnail: the
// first enabled image by insertion order.
func (repo *propertyImageRepository) FindFirstEnabledByProperty(ctx context.Context, propertyID string) (*entity.PropertyImage, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})

	imageM := new(model.PropertyImageModel)
	if err := repo.collection.FindOne(ctx, enabledByProperty(propertyID), opts).Decode(imageM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find first enabled image")
	}

	return toPropertyImageDomain(imageM), nil
}

// Create persists a new image record and fills in the generated ID.
func (repo *propertyImageRepository) Create(ctx context.Context, image *entity.PropertyImage) error {
	imageM := &model.PropertyImageModel{
		ID:         primitive.NewObjectID(),
		IDProperty: image.IDProperty,
		File:       image.File,
		Enabled:    image.Enabled,
	}

	if _, err := repo.collection.InsertOne(ctx, imageM); err != nil {
		return errors.Wrap(err, "failed to insert property image")
	}

	image.ID = imageM.ID.Hex()

	return nil
}

// Disable sets enabled=false on the image.
func (repo *propertyImageRepository) Disable(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrImageNotFound
	}

	result, err := repo.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"enabled": false}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to disable property image")
	}
	if result.MatchedCount == 0 {
		return repository.ErrImageNotFound
	}

	return nil
}

// toPropertyImageDomain maps the persistence model back to a pure domain entity.
func toPropertyImageDomain(imageM *model.PropertyImageModel) *entity.PropertyImage {
	return &entity.PropertyImage{
		ID:         imageM.ID.Hex(),
		IDProperty: imageM.IDProperty,
		File:       imageM.File,
		Enabled:    imageM.Enabled,
	}
}
