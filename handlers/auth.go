package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"devlink/apperr"
	"devlink/auth"
	"devlink/models"
)

// UserDirectory is the slice of the user store the auth handlers need.
type UserDirectory interface {
	Create(ctx context.Context, name, email, passwordHash, avatar string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	SetAvatar(ctx context.Context, userID, url string) error
}

type AuthHandler struct {
	Users UserDirectory
	Codec *auth.Codec

	// CloudinaryURL enables avatar uploads; empty disables them.
	CloudinaryURL string
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Avatar   string `json:"avatar"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	avatar := req.Avatar
	if avatar == "" {
		avatar = fallbackAvatar
	}

	ctx, cancel := storeCtx()
	defer cancel()

	user, err := h.Users.Create(ctx, req.Name, req.Email, string(hashed), avatar)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.Codec.Issue(user.ID.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"token":   token,
		"userId":  user.ID.Hex(),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		// Unknown email and bad password are indistinguishable to the
		// caller.
		if errors.Is(err, apperr.ErrNotFound) {
			respondError(c, apperr.NewUnauthenticated("invalid email or password"))
			return
		}
		respondError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondError(c, apperr.NewUnauthenticated("invalid email or password"))
		return
	}

	token, err := h.Codec.Issue(user.ID.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"userId":  user.ID.Hex(),
	})
}

// Me returns the authenticated user. The password hash is never
// serialized.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	user, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
