package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"devlink/apperr"
)

func TestUpsertSetMergesOnlySuppliedFields(t *testing.T) {
	id := primitive.NewObjectID()
	in := ProfileInput{Status: "Developer", Company: "Acme"}

	set := in.setDoc(id, 1234)

	assert.Equal(t, "Developer", set["status"])
	assert.Equal(t, "Acme", set["company"])
	assert.Equal(t, id, set["userId"])
	assert.Equal(t, int64(1234), set["updatedAt"])

	// Omitted fields must not appear in the $set: the stored values are
	// left untouched by the merge.
	assert.NotContains(t, set, "website")
	assert.NotContains(t, set, "location")
	assert.NotContains(t, set, "bio")
	assert.NotContains(t, set, "skills")
}

func TestUpsertSetParsesSkills(t *testing.T) {
	in := ProfileInput{Status: "Developer", Skills: " Go, MongoDB ,Docker "}

	set := in.setDoc(primitive.NewObjectID(), 0)

	assert.Equal(t, []string{"Go", "MongoDB", "Docker"}, set["skills"])
}

func TestUpsertSetEmptySkillsNotInvented(t *testing.T) {
	in := ProfileInput{Status: "Developer"}

	set := in.setDoc(primitive.NewObjectID(), 0)

	assert.NotContains(t, set, "skills")
}

func TestUpsertSetRebuildsSocialWholesale(t *testing.T) {
	first := ProfileInput{Status: "Developer", Twitter: "https://twitter.com/a", YouTube: "https://youtube.com/a"}
	second := ProfileInput{Status: "Developer", LinkedIn: "https://linkedin.com/in/a"}

	firstSet := first.setDoc(primitive.NewObjectID(), 0)
	assert.Equal(t, map[string]string{
		"twitter": "https://twitter.com/a",
		"youtube": "https://youtube.com/a",
	}, firstSet["social"])

	// Unlike the top-level fields, social is replaced on every call:
	// platforms supplied before but omitted now vanish.
	secondSet := second.setDoc(primitive.NewObjectID(), 0)
	assert.Equal(t, map[string]string{
		"linkedin": "https://linkedin.com/in/a",
	}, secondSet["social"])
}

func TestUpsertSetNoSocialYieldsEmptyMap(t *testing.T) {
	in := ProfileInput{Status: "Developer"}

	set := in.setDoc(primitive.NewObjectID(), 0)

	assert.Equal(t, map[string]string{}, set["social"])
}

func TestParseIDMalformedIsNotFound(t *testing.T) {
	_, err := parseID("not-a-hex-id", "post")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = parseID(primitive.NewObjectID().Hex(), "post")
	assert.NoError(t, err)
}
