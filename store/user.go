package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"devlink/apperr"
	"devlink/models"
)

// UserStore is the user directory: it creates user records at
// registration and resolves identities to display fields for author
// snapshots.
type UserStore struct {
	users *mongo.Collection
}

func NewUserStore(users *mongo.Collection) *UserStore {
	return &UserStore{users: users}
}

func (s *UserStore) Create(ctx context.Context, name, email, passwordHash, avatar string) (*models.User, error) {
	var existing models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		return nil, apperr.NewConflict("email already in use")
	}
	if err != mongo.ErrNoDocuments {
		return nil, apperr.NewUnavailable("database error", err)
	}

	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Avatar:       avatar,
		CreatedAt:    time.Now().Unix(),
	}

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return nil, apperr.NewUnavailable("failed to create user", err)
	}
	return &user, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, findErr(err, "user")
	}
	return &user, nil
}

func (s *UserStore) GetByID(ctx context.Context, userID string) (*models.User, error) {
	id, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, findErr(err, "user")
	}
	return &user, nil
}

func (s *UserStore) SetAvatar(ctx context.Context, userID, url string) error {
	id, err := parseID(userID, "user")
	if err != nil {
		return err
	}
	result, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"avatar": url}})
	if err != nil {
		return apperr.NewUnavailable("failed to update avatar", err)
	}
	if result.MatchedCount == 0 {
		return apperr.NewNotFound("user")
	}
	return nil
}
