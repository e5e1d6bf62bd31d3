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

type PostStore struct {
	posts *mongo.Collection
	users *mongo.Collection
}

func NewPostStore(posts, users *mongo.Collection) *PostStore {
	return &PostStore{posts: posts, users: users}
}

// Create snapshots the author's current name and avatar into the post
// document. The snapshot is never re-synced with later profile edits.
func (s *PostStore) Create(ctx context.Context, authorID, text string) (*models.Post, error) {
	id, err := parseID(authorID, "user")
	if err != nil {
		return nil, err
	}

	var author models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&author); err != nil {
		return nil, findErr(err, "user")
	}

	post := models.Post{
		ID:        primitive.NewObjectID(),
		UserID:    author.ID,
		Text:      text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		Likes:     []models.Like{},
		Comments:  []models.Comment{},
		CreatedAt: time.Now().Unix(),
	}

	if _, err := s.posts.InsertOne(ctx, post); err != nil {
		return nil, apperr.NewUnavailable("failed to create post", err)
	}
	return &post, nil
}

func (s *PostStore) GetAll(ctx context.Context) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.posts.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperr.NewUnavailable("failed to fetch posts", err)
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, apperr.NewUnavailable("failed to decode posts", err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

func (s *PostStore) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	id, err := parseID(postID, "post")
	if err != nil {
		return nil, err
	}
	var post models.Post
	if err := s.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		return nil, findErr(err, "post")
	}
	return &post, nil
}

// Delete removes a post after checking the requester owns it. The
// ownership check runs before any write; a forbidden request leaves the
// document untouched.
func (s *PostStore) Delete(ctx context.Context, postID, requesterID string) error {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	requester, err := parseID(requesterID, "user")
	if err != nil {
		return err
	}
	if err := models.AssertOwner(post.UserID, requester); err != nil {
		return err
	}
	if _, err := s.posts.DeleteOne(ctx, bson.M{"_id": post.ID}); err != nil {
		return apperr.NewUnavailable("failed to delete post", err)
	}
	return nil
}

func (s *PostStore) Like(ctx context.Context, postID, userID string) ([]models.Like, error) {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	liker, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}
	if err := post.AddLike(liker); err != nil {
		return nil, err
	}
	if err := s.setLikes(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

func (s *PostStore) Unlike(ctx context.Context, postID, userID string) ([]models.Like, error) {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	liker, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}
	if err := post.RemoveLike(liker); err != nil {
		return nil, err
	}
	if err := s.setLikes(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

func (s *PostStore) AddComment(ctx context.Context, postID, authorID, text string) ([]models.Comment, error) {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	id, err := parseID(authorID, "user")
	if err != nil {
		return nil, err
	}

	var author models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&author); err != nil {
		return nil, findErr(err, "user")
	}

	post.AddComment(models.Comment{
		UserID: author.ID,
		Text:   text,
		Name:   author.Name,
		Avatar: author.Avatar,
	})
	if err := s.setComments(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// RemoveComment authorizes against the comment's author, not the
// post's: anyone may comment on a post, but only the commenter may
// delete their comment.
func (s *PostStore) RemoveComment(ctx context.Context, postID, commentID, requesterID string) ([]models.Comment, error) {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	cid, err := parseID(commentID, "comment")
	if err != nil {
		return nil, err
	}
	requester, err := parseID(requesterID, "user")
	if err != nil {
		return nil, err
	}
	if err := post.RemoveComment(cid, requester); err != nil {
		return nil, err
	}
	if err := s.setComments(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}

func (s *PostStore) setLikes(ctx context.Context, post *models.Post) error {
	_, err := s.posts.UpdateOne(ctx, bson.M{"_id": post.ID}, bson.M{"$set": bson.M{"likes": post.Likes}})
	if err != nil {
		return apperr.NewUnavailable("failed to save post", err)
	}
	return nil
}

func (s *PostStore) setComments(ctx context.Context, post *models.Post) error {
	_, err := s.posts.UpdateOne(ctx, bson.M{"_id": post.ID}, bson.M{"$set": bson.M{"comments": post.Comments}})
	if err != nil {
		return apperr.NewUnavailable("failed to save post", err)
	}
	return nil
}
