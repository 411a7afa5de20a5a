package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/portfolio-backend/internal/auth"
)

func signToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()

	claims := auth.Claims{
		ID:   "u1",
		Name: "Alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func userRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", RequireUser(auth.NewVerifier(secret)), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": auth.UserID(c), "name": auth.UserName(c)})
	})
	return r
}

func TestRequireUser(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		r := userRouter("test_secret")

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token populates identity", func(t *testing.T) {
		r := userRouter("test_secret")

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test_secret", time.Now().Add(time.Hour)))
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":"u1","name":"Alice"}`, rr.Body.String())
	})

	t.Run("expired token", func(t *testing.T) {
		r := userRouter("test_secret")

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test_secret", time.Now().Add(-time.Hour)))
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "token expired")
	})

	t.Run("invalid token", func(t *testing.T) {
		r := userRouter("test_secret")

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "other_secret", time.Now().Add(time.Hour)))
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid token")
	})

	t.Run("unconfigured secret is a server error", func(t *testing.T) {
		r := userRouter("")

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test_secret", time.Now().Add(time.Hour)))
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func adminRouter(authorizedUserID, callerID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setUser := func(c *gin.Context) {
		c.Set(auth.CtxUserID, callerID)
		c.Next()
	}
	r.POST("/mutate", setUser, RequireAdmin(authorizedUserID), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	t.Run("matching admin id passes", func(t *testing.T) {
		r := adminRouter("admin-1", "admin-1")

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/mutate", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("any other caller is forbidden", func(t *testing.T) {
		r := adminRouter("admin-1", "u1")

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/mutate", nil))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("unconfigured admin id rejects everyone", func(t *testing.T) {
		r := adminRouter("", "u1")

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/mutate", nil))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
