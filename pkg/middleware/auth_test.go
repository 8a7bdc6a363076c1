package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ESRS-Group/backend-api/internal/sessions"
	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	claims map[string]interface{}
}

func (f *fakeToken) Claims(v interface{}) error {
	if m, ok := v.(*map[string]interface{}); ok {
		*m = f.claims
		return nil
	}
	return errors.New("unsupported claims target")
}

type fakeVerifier struct {
	token Token
	err   error
}

func (f *fakeVerifier) Verify(ctx context.Context, raw string) (Token, error) {
	return f.token, f.err
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := gin.New()
	r.GET("/p", AuthMiddleware(&fakeVerifier{}), func(c *gin.Context) { c.Status(200) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/p", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := gin.New()
	r.GET("/p", AuthMiddleware(&fakeVerifier{err: errors.New("bad token")}), func(c *gin.Context) { c.Status(200) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set("Authorization", "Bearer nope")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_SetsClaims(t *testing.T) {
	ver := &fakeVerifier{token: &fakeToken{claims: map[string]interface{}{"sub": "u-1"}}}
	r := gin.New()
	r.GET("/p", AuthMiddleware(ver), func(c *gin.Context) {
		v, ok := c.Get("claims")
		require.True(t, ok)
		cm := v.(map[string]interface{})
		c.JSON(200, gin.H{"sub": cm["sub"]})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "u-1")
}

func TestAuthMiddleware_RejectsBlacklistedToken(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()
	sessions.SetBlacklistClient(redis.NewClient(&redis.Options{Addr: m.Addr()}))
	defer sessions.SetBlacklistClient(nil)

	token := "revoked-token"
	require.NoError(t, sessions.BlacklistAccessToken(context.Background(), token, 5*time.Second))

	ver := &fakeVerifier{token: &fakeToken{claims: map[string]interface{}{"sub": "u-1"}}}
	r := gin.New()
	r.GET("/p", AuthMiddleware(ver), func(c *gin.Context) { c.Status(200) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
