// Package store is the persistence boundary: each store wraps the mongo
// collections and normalizes driver failures into the apperr taxonomy.
// Malformed ids and missing documents both surface as NotFound (an id
// that cannot parse can never match a document); every other driver
// failure becomes Unavailable with the cause attached for logging.
package store

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"devlink/apperr"
)

func parseID(hex, resource string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, apperr.NewNotFound(resource)
	}
	return id, nil
}

func findErr(err error, resource string) error {
	if err == mongo.ErrNoDocuments {
		return apperr.NewNotFound(resource)
	}
	return apperr.NewUnavailable("database error", err)
}
