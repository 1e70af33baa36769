package mongodb

import (
	"context"
	"regexp"

	"million/internal/domain/entity"
	"million/internal/domain/repository"
	"million/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// propertyRepository implements the repository.PropertyRepository interface.
type propertyRepository struct {
	collection *mongo.Collection
}

// NewPropertyRepository is the constructor for propertyRepository.
// It returns the repository as a repository.PropertyRepository interface, adhering to dependency inversion.
func NewPropertyRepository(db *mongo.Database) repository.PropertyRepository {
	return &propertyRepository{
		collection: db.Collection(model.PropertyModel{}.CollectionName()),
	}
}

// buildFilter translates the domain filter into a bson document. Absent
// fields contribute no clause at all.
func buildFilter(filter repository.PropertyFilter) bson.M {
	query := bson.M{}

	if filter.Name != nil {
		query["name"] = bson.M{
			"$regex":   regexp.QuoteMeta(*filter.Name),
			"$options": "i",
		}
	}
	if filter.Address != nil {
		query["address"] = bson.M{
			"$regex":   regexp.QuoteMeta(*filter.Address),
			"$options": "i",
		}
	}

	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	return query
}

// FindPage retrieves one page of properties matching the filter, sorted
// ascending by name, together with the total match count.
func (repo *propertyRepository) FindPage(ctx context.Context, filter repository.PropertyFilter, page repository.Page) ([]*entity.Property, int64, error) {
	query := buildFilter(filter)

	total, err := repo.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count properties")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.PageSize))

	cursor, err := repo.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to find properties")
	}
	defer cursor.Close(ctx)

	var models []*model.PropertyModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, 0, errors.Wrap(err, "failed to decode properties")
	}

	properties := make([]*entity.Property, 0, len(models))
	for _, propertyM := range models {
		properties = append(properties, toPropertyDomain(propertyM))
	}

	return properties, total, nil
}

// FindByID retrieves a single property by its unique ID.
func (repo *propertyRepository) FindByID(ctx context.Context, id string) (*entity.Property, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An id that cannot be an ObjectID cannot match any document.
		return nil, repository.ErrPropertyNotFound
	}

	propertyM := new(model.PropertyModel)
	if err := repo.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(propertyM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property by id")
	}

	return toPropertyDomain(propertyM), nil
}

// Create persists a new property and fills in the generated ID.
func (repo *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	propertyM := toPropertyModel(property)
	propertyM.ID = primitive.NewObjectID()

	if _, err := repo.collection.InsertOne(ctx, propertyM); err != nil {
		return errors.Wrap(err, "failed to insert property")
	}

	property.ID = propertyM.ID.Hex()

	return nil
}

// Update applies the staged field sets as one combined $set.
func (repo *propertyRepository) Update(ctx context.Context, id string, update repository.PropertyUpdate) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrPropertyNotFound
	}

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Address != nil {
		set["address"] = *update.Address
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.CodeInternal != nil {
		set["codeInternal"] = *update.CodeInternal
	}
	if update.Year != nil {
		set["year"] = *update.Year
	}
	if len(set) == 0 {
		return nil
	}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return errors.Wrap(err, "failed to update property")
	}
	if result.MatchedCount == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// Delete removes the property permanently.
func (repo *propertyRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrPropertyNotFound
	}

	result, err := repo.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return errors.Wrap(err, "failed to delete property")
	}
	if result.DeletedCount == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// toPropertyDomain maps the persistence model back to a pure domain entity.
func toPropertyDomain(propertyM *model.PropertyModel) *entity.Property {
	return &entity.Property{
		ID:           propertyM.ID.Hex(),
		IDOwner:      propertyM.IDOwner,
		Name:         propertyM.Name,
		Address:      propertyM.Address,
		Price:        propertyM.Price,
		CodeInternal: propertyM.CodeInternal,
		Year:         propertyM.Year,
		Description:  propertyM.Description,
	}
}

func toPropertyModel(property *entity.Property) *model.PropertyModel {
	return &model.PropertyModel{
		IDOwner:      property.IDOwner,
		Name:         property.Name,
		Address:      property.Address,
		Price:        property.Price,
		CodeInternal: property.CodeInternal,
		Year:         property.Year,
		Description:  property.Description,
	}
}
