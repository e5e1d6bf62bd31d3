package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"devlink/apperr"
)

type Post struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Text   string             `bson:"text" json:"text"`
	// Author display fields are snapshotted at creation time and never
	// re-synced with later profile edits.
	Name      string    `bson:"name" json:"name"`
	Avatar    string    `bson:"avatar" json:"avatar"`
	Likes     []Like    `bson:"likes" json:"likes"`
	Comments  []Comment `bson:"comments" json:"comments"`
	CreatedAt int64     `bson:"createdAt" json:"createdAt"`
}

// Like entries are keyed by user id; a post never holds two likes from
// the same user.
type Like struct {
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
}

type Comment struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Text      string             `bson:"text" json:"text"`
	Name      string             `bson:"name" json:"name"`
	Avatar    string             `bson:"avatar" json:"avatar"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}

func (p *Post) likedBy(userID primitive.ObjectID) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// AddLike inserts a like at the head. A second like from the same user
// is a semantic conflict, not a server error.
func (p *Post) AddLike(userID primitive.ObjectID) error {
	if p.likedBy(userID) {
		return apperr.NewConflict("post already liked")
	}
	p.Likes = append([]Like{{UserID: userID}}, p.Likes...)
	return nil
}

// RemoveLike removes the entry matching the user key. Removal is keyed,
// never positional, so an unrelated like is never dropped.
func (p *Post) RemoveLike(userID primitive.ObjectID) error {
	if !p.likedBy(userID) {
		return apperr.NewConflict("post has not yet been liked")
	}
	kept := p.Likes[:0]
	for _, l := range p.Likes {
		if l.UserID != userID {
			kept = append(kept, l)
		}
	}
	p.Likes = kept
	return nil
}

// AddComment assigns a fresh id, stamps the creation time and inserts
// at the head, newest first. Returns the generated id.
func (p *Post) AddComment(c Comment) primitive.ObjectID {
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now().Unix()
	p.Comments = append([]Comment{c}, p.Comments...)
	return c.ID
}

// RemoveComment deletes the identified comment after checking ownership
// against the comment's author, not the post's. A missing comment and a
// foreign comment are distinct outcomes, and neither mutates the post.
func (p *Post) RemoveComment(commentID, requesterID primitive.ObjectID) error {
	idx := -1
	for i, c := range p.Comments {
		if c.ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperr.NewNotFound("comment")
	}
	if err := AssertOwner(p.Comments[idx].UserID, requesterID); err != nil {
		return err
	}
	p.Comments = append(p.Comments[:idx], p.Comments[idx+1:]...)
	return nil
}
