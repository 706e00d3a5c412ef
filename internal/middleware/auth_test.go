package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func signTestToken(t *testing.T, role string, dur time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": uuid.New().String(), "email": "test@example.com", "role": role,
		"exp": time.Now().Add(dur).Unix(), "iat": time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return s
}

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth(testSecret))
	r.GET("/protected", func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "role": claims.Role})
	})
	r.GET("/admin", RequireRole("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_NoToken(t *testing.T) {
	w := doGet(authTestRouter(), "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	tok := signTestToken(t, "user", time.Hour)
	w := doGet(authTestRouter(), "/protected", tok)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	tok := signTestToken(t, "user", -time.Second)
	w := doGet(authTestRouter(), "/protected", tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	claims := jwt.MapClaims{"user_id": "x", "exp": time.Now().Add(time.Hour).Unix()}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, _ := tok.SignedString([]byte("a-completely-different-secret!!!"))
	w := doGet(authTestRouter(), "/protected", s)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	tok := signTestToken(t, "admin", time.Hour)
	w := doGet(authTestRouter(), "/admin", tok)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_UserForbidden(t *testing.T) {
	tok := signTestToken(t, "user", time.Hour)
	w := doGet(authTestRouter(), "/admin", tok)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestID_PreservesIncoming(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "trace-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "trace-123", w.Header().Get("X-Request-ID"))
}
