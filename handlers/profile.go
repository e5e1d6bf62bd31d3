package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"devlink/models"
	"devlink/store"
)

type ProfileMutator interface {
	Upsert(ctx context.Context, userID string, in store.ProfileInput) (*models.Profile, error)
	GetByUser(ctx context.Context, userID string) (*models.Profile, error)
	GetAll(ctx context.Context) ([]models.Profile, error)
	AddExperience(ctx context.Context, userID string, exp models.Experience) (*models.Profile, error)
	RemoveExperience(ctx context.Context, userID, entryID string) (*models.Profile, error)
	AddEducation(ctx context.Context, userID string, edu models.Education) (*models.Profile, error)
	RemoveEducation(ctx context.Context, userID, entryID string) (*models.Profile, error)
	Delete(ctx context.Context, userID string) error
}

type ProfileHandler struct {
	Profiles ProfileMutator
}

type UpsertProfileRequest struct {
	Status   string `json:"status" binding:"required"`
	Company  string `json:"company"`
	Website  string `json:"website"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
	Skills   string `json:"skills"`

	YouTube   string `json:"youtube"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

type ExperienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        int64  `json:"from" binding:"required"`
	To          int64  `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type EducationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"fieldOfStudy" binding:"required"`
	From         int64  `json:"from" binding:"required"`
	To           int64  `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	profile, err := h.Profiles.Upsert(ctx, userID, store.ProfileInput{
		Status:    req.Status,
		Company:   req.Company,
		Website:   req.Website,
		Location:  req.Location,
		Bio:       req.Bio,
		Skills:    req.Skills,
		YouTube:   req.YouTube,
		Twitter:   req.Twitter,
		Facebook:  req.Facebook,
		LinkedIn:  req.LinkedIn,
		Instagram: req.Instagram,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetMine(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	profile, err := h.Profiles.GetByUser(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetAll(c *gin.Context) {
	ctx, cancel := storeCtx()
	defer cancel()

	profiles, err := h.Profiles.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

func (h *ProfileHandler) GetByUser(c *gin.Context) {
	ctx, cancel := storeCtx()
	defer cancel()

	profile, err := h.Profiles.GetByUser(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	profile, err := h.Profiles.AddExperience(ctx, userID, models.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	profile, err := h.Profiles.RemoveExperience(ctx, userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	profile, err := h.Profiles.AddEducation(ctx, userID, models.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	profile, err := h.Profiles.RemoveEducation(ctx, userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Delete removes the caller's profile and account. Their posts remain.
func (h *ProfileHandler) Delete(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	if err := h.Profiles.Delete(ctx, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
