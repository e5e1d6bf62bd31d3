package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devlink/auth"
)

func newProtectedRouter(codec *auth.Codec) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/private", RequireAuth(codec), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString(ContextUserID)})
	})
	return router
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router := newProtectedRouter(auth.NewCodec("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthBadScheme(t *testing.T) {
	codec := auth.NewCodec("secret", time.Hour)
	router := newProtectedRouter(codec)

	token, err := codec.Issue("abc")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Token "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthForeignSecret(t *testing.T) {
	router := newProtectedRouter(auth.NewCodec("secret", time.Hour))

	foreign := auth.NewCodec("other-secret", time.Hour)
	token, err := foreign.Issue("abc")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// A foreign-signed token is unauthenticated, never forbidden.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	codec := auth.NewCodec("secret", time.Hour)
	router := newProtectedRouter(codec)

	token, err := codec.Issue("user-42")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestRequireAuthExpiredToken(t *testing.T) {
	codec := auth.NewCodec("secret", -time.Minute)
	router := newProtectedRouter(codec)

	token, err := codec.Issue("user-42")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
