package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGuardedRoutes(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("", Identity(testSecret))
	api.GET("/user-only", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CallerID(c)})
	})
	api.GET("/staff-only", RequireStaff(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnonymousRejected(t *testing.T) {
	r := setupGuardedRoutes(t)
	w := doGet(r, "/user-only", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIdentifiedUserPasses(t *testing.T) {
	r := setupGuardedRoutes(t)
	token, err := GenerateToken(testSecret, 7, false)
	require.NoError(t, err)
	w := doGet(r, "/user-only", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestNonStaffForbidden(t *testing.T) {
	r := setupGuardedRoutes(t)
	token, err := GenerateToken(testSecret, 7, false)
	require.NoError(t, err)
	w := doGet(r, "/staff-only", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStaffAllowed(t *testing.T) {
	r := setupGuardedRoutes(t)
	token, err := GenerateToken(testSecret, 7, true)
	require.NoError(t, err)
	w := doGet(r, "/staff-only", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMalformedTokenRejected(t *testing.T) {
	r := setupGuardedRoutes(t)
	w := doGet(r, "/user-only", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
