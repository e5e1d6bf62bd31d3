package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"devlink/apperr"
	"devlink/models"
)

// ProfileInput carries the upsert fields as they arrive on the wire.
// An empty string means "not supplied": the stored value is left alone.
// Social links are the exception, see Upsert.
type ProfileInput struct {
	Status   string
	Company  string
	Website  string
	Location string
	Bio      string
	Skills   string

	YouTube   string
	Twitter   string
	Facebook  string
	LinkedIn  string
	Instagram string
}

// setDoc builds the $set document for an upsert. Top-level fields are
// merged: an omitted field never appears and the stored value stays.
// The social map is always written wholesale from the supplied keys.
func (in ProfileInput) setDoc(userID primitive.ObjectID, now int64) bson.M {
	set := bson.M{
		"userId":    userID,
		"status":    in.Status,
		"updatedAt": now,
	}
	if in.Company != "" {
		set["company"] = in.Company
	}
	if in.Website != "" {
		set["website"] = in.Website
	}
	if in.Location != "" {
		set["location"] = in.Location
	}
	if in.Bio != "" {
		set["bio"] = in.Bio
	}
	if skills := models.ParseSkills(in.Skills); skills != nil {
		set["skills"] = skills
	}

	social := map[string]string{}
	for platform, url := range map[string]string{
		"youtube":   in.YouTube,
		"twitter":   in.Twitter,
		"facebook":  in.Facebook,
		"linkedin":  in.LinkedIn,
		"instagram": in.Instagram,
	} {
		if url != "" {
			social[platform] = url
		}
	}
	set["social"] = social

	return set
}

type ProfileStore struct {
	profiles *mongo.Collection
	users    *mongo.Collection
}

func NewProfileStore(profiles, users *mongo.Collection) *ProfileStore {
	return &ProfileStore{profiles: profiles, users: users}
}

// Upsert creates the caller's profile or merges the supplied fields
// into the existing one. The social map is NOT merged: it is rebuilt
// from exactly the platform keys supplied on this call, so omitted keys
// vanish. That full-overwrite behavior is intentional and covered by a
// regression test; do not change it without product confirmation.
func (s *ProfileStore) Upsert(ctx context.Context, userID string, in ProfileInput) (*models.Profile, error) {
	id, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}

	set := in.setDoc(id, time.Now().Unix())

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var profile models.Profile
	err = s.profiles.FindOneAndUpdate(ctx, bson.M{"userId": id}, bson.M{"$set": set}, opts).Decode(&profile)
	if err != nil {
		return nil, apperr.NewUnavailable("failed to save profile", err)
	}
	return &profile, nil
}

func (s *ProfileStore) GetByUser(ctx context.Context, userID string) (*models.Profile, error) {
	id, err := parseID(userID, "profile")
	if err != nil {
		return nil, err
	}
	var profile models.Profile
	if err := s.profiles.FindOne(ctx, bson.M{"userId": id}).Decode(&profile); err != nil {
		return nil, findErr(err, "profile")
	}
	return &profile, nil
}

// GetAll returns every profile with the owner's display fields
// populated from the user directory.
func (s *ProfileStore) GetAll(ctx context.Context) ([]models.Profile, error) {
	cursor, err := s.profiles.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.NewUnavailable("failed to fetch profiles", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, apperr.NewUnavailable("failed to decode profiles", err)
	}
	if len(profiles) == 0 {
		return []models.Profile{}, nil
	}

	ownerIDs := make([]primitive.ObjectID, 0, len(profiles))
	for _, p := range profiles {
		ownerIDs = append(ownerIDs, p.UserID)
	}

	userCursor, err := s.users.Find(ctx, bson.M{"_id": bson.M{"$in": ownerIDs}})
	if err != nil {
		return nil, apperr.NewUnavailable("failed to fetch users", err)
	}
	defer userCursor.Close(ctx)

	var users []models.User
	if err := userCursor.All(ctx, &users); err != nil {
		return nil, apperr.NewUnavailable("failed to decode users", err)
	}

	byID := make(map[primitive.ObjectID]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	for i := range profiles {
		if u, ok := byID[profiles[i].UserID]; ok {
			profiles[i].User = &models.User{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
		}
	}
	return profiles, nil
}

func (s *ProfileStore) AddExperience(ctx context.Context, userID string, exp models.Experience) (*models.Profile, error) {
	profile, err := s.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.AddExperience(exp)
	return s.replace(ctx, profile)
}

// RemoveExperience persists even when the entry id matches nothing: an
// unknown id is a silent no-op, not an error.
func (s *ProfileStore) RemoveExperience(ctx context.Context, userID, entryID string) (*models.Profile, error) {
	profile, err := s.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	id, err := parseID(entryID, "experience")
	if err != nil {
		return nil, err
	}
	profile.RemoveExperience(id)
	return s.replace(ctx, profile)
}

func (s *ProfileStore) AddEducation(ctx context.Context, userID string, edu models.Education) (*models.Profile, error) {
	profile, err := s.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.AddEducation(edu)
	return s.replace(ctx, profile)
}

func (s *ProfileStore) RemoveEducation(ctx context.Context, userID, entryID string) (*models.Profile, error) {
	profile, err := s.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	id, err := parseID(entryID, "education")
	if err != nil {
		return nil, err
	}
	profile.RemoveEducation(id)
	return s.replace(ctx, profile)
}

// Delete removes the caller's profile and the underlying user record.
// The user's posts are left in place; cascading post deletion is not
// implemented.
func (s *ProfileStore) Delete(ctx context.Context, userID string) error {
	id, err := parseID(userID, "user")
	if err != nil {
		return err
	}
	if _, err := s.profiles.DeleteOne(ctx, bson.M{"userId": id}); err != nil {
		return apperr.NewUnavailable("failed to delete profile", err)
	}
	if _, err := s.users.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return apperr.NewUnavailable("failed to delete user", err)
	}
	return nil
}

func (s *ProfileStore) replace(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	profile.UpdatedAt = time.Now().Unix()
	_, err := s.profiles.ReplaceOne(ctx, bson.M{"_id": profile.ID}, profile)
	if err != nil {
		return nil, apperr.NewUnavailable("failed to save profile", err)
	}
	return profile, nil
}
