package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"devlink/apperr"
)

func TestAssertOwnerAllowsOwner(t *testing.T) {
	owner := primitive.NewObjectID()
	assert.NoError(t, AssertOwner(owner, owner))
}

func TestAssertOwnerRejectsOthers(t *testing.T) {
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()

	err := AssertOwner(owner, other)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	assert.NotErrorIs(t, err, apperr.ErrNotFound, "forbidden and not-found are distinct outcomes")
}
