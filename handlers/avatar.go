package handlers

import (
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

// UploadAvatar stores a new avatar image on Cloudinary and saves the
// secure URL on the user document. Posts and comments created earlier
// keep their snapshotted avatar.
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	if h.CloudinaryURL == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Avatar uploads are not configured"})
		return
	}

	if err := c.Request.ParseMultipartForm(10 << 20); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse form data"})
		return
	}

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No avatar file provided"})
		return
	}
	defer file.Close()

	ctx, cancel := storeCtx()
	defer cancel()

	cld, err := cloudinary.NewFromURL(h.CloudinaryURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cloudinary configuration error"})
		return
	}

	uploadParams := uploader.UploadParams{
		Folder:         "devlink/avatars",
		PublicID:       userID,
		Transformation: "c_limit,w_400,h_400,q_auto",
	}

	result, err := cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload avatar"})
		return
	}

	if err := h.Users.SetAvatar(ctx, userID, result.SecureURL); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": result.SecureURL})
}
