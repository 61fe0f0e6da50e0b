package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"NeoVax/models"
	"NeoVax/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	chain := []gin.HandlerFunc{TokenAuthMiddleware()}
	chain = append(chain, extra...)
	chain = append(chain, func(c *gin.Context) {
		userID, err := ExtractUserIDFromContext(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	router.GET("/protected", chain...)
	return router
}

func TestTokenAuthMiddlewareMissingToken(t *testing.T) {
	router := authTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Missing access token")
}

func TestTokenAuthMiddlewareInvalidToken(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	router := authTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected?accessToken=garbage", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestTokenAuthMiddlewarePassesClaimsThrough(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	token, err := utils.GenerateAccessToken("9", models.RoleStaff)
	require.NoError(t, err)

	router := authTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected?accessToken="+token, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"9"`)
}

func TestRoleAuthMiddlewareForbidsWrongRole(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	token, err := utils.GenerateAccessToken("9", models.RoleStaff)
	require.NoError(t, err)

	router := authTestRouter(RoleAuthMiddleware(models.RoleAdmin))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected?accessToken="+token, nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleAuthMiddlewareAllowsMatchingRole(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	token, err := utils.GenerateAccessToken("1", models.RoleAdmin)
	require.NoError(t, err)

	router := authTestRouter(RoleAuthMiddleware(models.RoleAdmin))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected?accessToken="+token, nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
