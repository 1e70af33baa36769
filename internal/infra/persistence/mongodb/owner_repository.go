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

// ownerRepository implements the repository.OwnerRepository interface.
type ownerRepository struct {
	collection *mongo.Collection
}

// NewOwnerRepository is the constructor for ownerRepository.
func NewOwnerRepository(db *mongo.Database) repository.OwnerRepository {
	return &ownerRepository{
		collection: db.Collection(model.OwnerModel{}.CollectionName()),
	}
}

// FindAll retrieves every owner, sorted ascending by name.
func (repo *ownerRepository) FindAll(ctx context.Context) ([]*entity.Owner, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := repo.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find owners")
	}
	defer cursor.Close(ctx)

	var models []*model.OwnerModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode owners")
	}

	owners := make([]*entity.Owner, 0, len(models))
	for _, ownerM := range models {
		owners = append(owners, toOwnerDomain(ownerM))
	}

	return owners, nil
}

// FindByID retrieves a single owner by their unique ID.
func (repo *ownerRepository) FindByID(ctx context.Context, id string) (*entity.Owner, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrOwnerNotFound
	}

	ownerM := new(model.OwnerModel)
	if err := repo.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(ownerM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by id")
	}

	return toOwnerDomain(ownerM), nil
}

// Create persists a new owner. A preset ID (owner provisioned for a
// registered user) is kept so the two documents share one id.
func (repo *ownerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	ownerM := toOwnerModel(owner)

	if owner.ID != "" {
		objectID, err := primitive.ObjectIDFromHex(owner.ID)
		if err != nil {
			return errors.Wrap(err, "invalid preset owner id")
		}
		ownerM.ID = objectID
	} else {
		ownerM.ID = primitive.NewObjectID()
	}

	if _, err := repo.collection.InsertOne(ctx, ownerM); err != nil {
		return errors.Wrap(err, "failed to insert owner")
	}

	owner.ID = ownerM.ID.Hex()

	return nil
}

// Update replaces the owner document under the given ID.
func (repo *ownerRepository) Update(ctx context.Context, id string, owner *entity.Owner) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrOwnerNotFound
	}

	ownerM := toOwnerModel(owner)
	ownerM.ID = objectID

	result, err := repo.collection.ReplaceOne(ctx, bson.M{"_id": objectID}, ownerM)
	if err != nil {
		return errors.Wrap(err, "failed to update owner")
	}
	if result.MatchedCount == 0 {
		return repository.ErrOwnerNotFound
	}

	return nil
}

// Delete removes the owner permanently.
func (repo *ownerRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrOwnerNotFound
	}

	result, err := repo.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return errors.Wrap(err, "failed to delete owner")
	}
	if result.DeletedCount == 0 {
		return repository.ErrOwnerNotFound
	}

	return nil
}

// toOwnerDomain maps the persistence model back to a pure domain entity.
func toOwnerDomain(ownerM *model.OwnerModel) *entity.Owner {
	return &entity.Owner{
		ID:       ownerM.ID.Hex(),
		Name:     ownerM.Name,
		Address:  ownerM.Address,
		Photo:    ownerM.Photo,
		Birthday: ownerM.Birthday,
	}
}

func toOwnerModel(owner *entity.Owner) *model.OwnerModel {
	return &model.OwnerModel{
		Name:     owner.Name,
		Address:  owner.Address,
		Photo:    owner.Photo,
		Birthday: owner.Birthday,
	}
}
