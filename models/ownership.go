package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"devlink/apperr"
)

// AssertOwner is the single ownership rule for every delete/update on a
// shared document: only the identity that created a resource may mutate
// it. IDs are compared in canonical hex form so callers holding a string
// id and callers holding an ObjectID agree.
func AssertOwner(owner, caller primitive.ObjectID) error {
	if owner.Hex() != caller.Hex() {
		return apperr.NewForbidden("you are not the owner of this resource")
	}
	return nil
}
