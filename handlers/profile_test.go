package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"devlink/apperr"
	"devlink/middleware"
	"devlink/models"
	"devlink/store"
)

type fakeProfileStore struct {
	profile *models.Profile
	err     error

	upsertInput store.ProfileInput
	removedID   string
	deleted     bool
}

func (f *fakeProfileStore) Upsert(_ context.Context, _ string, in store.ProfileInput) (*models.Profile, error) {
	f.upsertInput = in
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func (f *fakeProfileStore) GetByUser(context.Context, string) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func (f *fakeProfileStore) GetAll(context.Context) ([]models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.Profile{*f.profile}, nil
}

func (f *fakeProfileStore) AddExperience(context.Context, string, models.Experience) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func (f *fakeProfileStore) RemoveExperience(_ context.Context, _ string, entryID string) (*models.Profile, error) {
	f.removedID = entryID
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func (f *fakeProfileStore) AddEducation(context.Context, string, models.Education) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func (f *fakeProfileStore) RemoveEducation(_ context.Context, _ string, entryID string) (*models.Profile, error) {
	f.removedID = entryID
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func (f *fakeProfileStore) Delete(context.Context, string) error {
	f.deleted = true
	return f.err
}

func newProfileRouter(profiles ProfileMutator, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &ProfileHandler{Profiles: profiles}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set(middleware.ContextUserID, userID)
		}
	})
	r.POST("/api/profile", h.Upsert)
	r.GET("/api/profile/me", h.GetMine)
	r.GET("/api/profile", h.GetAll)
	r.GET("/api/profile/user/:id", h.GetByUser)
	r.DELETE("/api/profile", h.Delete)
	r.PUT("/api/profile/experience", h.AddExperience)
	r.DELETE("/api/profile/experience/:id", h.RemoveExperience)
	r.PUT("/api/profile/education", h.AddEducation)
	r.DELETE("/api/profile/education/:id", h.RemoveEducation)
	return r
}

func testProfile() *models.Profile {
	return &models.Profile{
		ID:     primitive.NewObjectID(),
		UserID: primitive.NewObjectID(),
		Status: "Developer",
	}
}

func TestUpsertProfileMissingStatus(t *testing.T) {
	profiles := &fakeProfileStore{profile: testProfile()}
	r := newProfileRouter(profiles, primitive.NewObjectID().Hex())

	w := doJSON(t, r, http.MethodPost, "/api/profile", `{"company":"Acme"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, profiles.upsertInput.Company, "validation failures must not reach the store")
}

func TestUpsertProfilePassesFieldsThrough(t *testing.T) {
	profiles := &fakeProfileStore{profile: testProfile()}
	r := newProfileRouter(profiles, primitive.NewObjectID().Hex())

	w := doJSON(t, r, http.MethodPost, "/api/profile",
		`{"status":"Developer","skills":"Go, MongoDB","twitter":"https://twitter.com/jane"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Developer", profiles.upsertInput.Status)
	assert.Equal(t, "Go, MongoDB", profiles.upsertInput.Skills)
	assert.Equal(t, "https://twitter.com/jane", profiles.upsertInput.Twitter)
	assert.Empty(t, profiles.upsertInput.YouTube)
}

func TestGetMineNotFound(t *testing.T) {
	profiles := &fakeProfileStore{err: apperr.NewNotFound("profile")}
	r := newProfileRouter(profiles, primitive.NewObjectID().Hex())

	w := doJSON(t, r, http.MethodGet, "/api/profile/me", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddExperienceValidation(t *testing.T) {
	profiles := &fakeProfileStore{profile: testProfile()}
	r := newProfileRouter(profiles, primitive.NewObjectID().Hex())

	// Title, company and from are all required.
	w := doJSON(t, r, http.MethodPut, "/api/profile/experience", `{"title":"Dev"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveExperiencePassesEntryID(t *testing.T) {
	profiles := &fakeProfileStore{profile: testProfile()}
	r := newProfileRouter(profiles, primitive.NewObjectID().Hex())

	entryID := primitive.NewObjectID().Hex()
	w := doJSON(t, r, http.MethodDelete, "/api/profile/experience/"+entryID, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entryID, profiles.removedID)
}

func TestDeleteProfile(t *testing.T) {
	profiles := &fakeProfileStore{profile: testProfile()}
	r := newProfileRouter(profiles, primitive.NewObjectID().Hex())

	w := doJSON(t, r, http.MethodDelete, "/api/profile", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, profiles.deleted)
}

func TestProfileRoutesRequireIdentity(t *testing.T) {
	profiles := &fakeProfileStore{profile: testProfile()}
	r := newProfileRouter(profiles, "")

	w := doJSON(t, r, http.MethodPost, "/api/profile", `{"status":"Developer"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
