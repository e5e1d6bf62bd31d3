package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"devlink/models"
)

type PostMutator interface {
	Create(ctx context.Context, authorID, text string) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	Delete(ctx context.Context, postID, requesterID string) error
	Like(ctx context.Context, postID, userID string) ([]models.Like, error)
	Unlike(ctx context.Context, postID, userID string) ([]models.Like, error)
	AddComment(ctx context.Context, postID, authorID, text string) ([]models.Comment, error)
	RemoveComment(ctx context.Context, postID, commentID, requesterID string) ([]models.Comment, error)
}

type PostHandler struct {
	Posts PostMutator
}

type CreatePostRequest struct {
	Text string `json:"text" binding:"required"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	post, err := h.Posts.Create(ctx, userID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) GetAll(c *gin.Context) {
	ctx, cancel := storeCtx()
	defer cancel()

	posts, err := h.Posts.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) GetByID(c *gin.Context) {
	ctx, cancel := storeCtx()
	defer cancel()

	post, err := h.Posts.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	if err := h.Posts.Delete(ctx, c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post removed"})
}

func (h *PostHandler) Like(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	likes, err := h.Posts.Like(ctx, c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, likes)
}

func (h *PostHandler) Unlike(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	likes, err := h.Posts.Unlike(ctx, c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, likes)
}

func (h *PostHandler) AddComment(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	comments, err := h.Posts.AddComment(ctx, c.Param("id"), userID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comments)
}

func (h *PostHandler) RemoveComment(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	comments, err := h.Posts.RemoveComment(ctx, c.Param("id"), c.Param("commentId"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}
