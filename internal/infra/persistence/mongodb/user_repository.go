package mongodb

import (
	"context"
	"time"

	"million/internal/domain/entity"
	"million/internal/domain/repository"
	"million/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		collection: db.Collection(model.UserModel{}.CollectionName()),
	}
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	userM := new(model.UserModel)
	if err := repo.collection.FindOne(ctx, bson.M{"email": email}).Decode(userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(userM), nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	userM := new(model.UserModel)
	if err := repo.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(userM), nil
}

// Create persists a new user and fills in the generated ID. A duplicate email
// surfaces as ErrDuplicateEmail via the unique index.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := &model.UserModel{
		ID:           primitive.NewObjectID(),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FullName:     user.FullName,
		Photo:        user.Photo,
		Role:         user.Role,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := repo.collection.InsertOne(ctx, userM); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to insert user")
	}

	user.ID = userM.ID.Hex()

	return nil
}

// toUserDomain maps the persistence model back to a pure domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:           userM.ID.Hex(),
		Email:        userM.Email,
		PasswordHash: userM.PasswordHash,
		FullName:     userM.FullName,
		Photo:        userM.Photo,
		Role:         userM.Role,
	}
}
