package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/adityawp/casaly/pkg/helpers"
)

func newAuthRouter(jwt *helpers.JWTManager) (*gin.Engine, *bool, *string) {
	gin.SetMode(gin.TestMode)
	called := false
	seenUserID := ""
	r := gin.New()
	r.GET("/protected", Auth(jwt), func(c *gin.Context) {
		called = true
		seenUserID = c.GetString(CtxUserIDKey)
		c.Status(http.StatusOK)
	})
	return r, &called, &seenUserID
}

func TestAuth_MissingToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r, called, _ := newAuthRouter(jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, *called, "handler ran without a token")
}

func TestAuth_WrongSecret(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	other := helpers.NewJWTManager("other-secret", time.Hour)
	r, called, _ := newAuthRouter(jwt)

	tok, _, err := other.Issue("u1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, *called, "handler ran with a forged token")
}

func TestAuth_ExpiredToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	expired := helpers.NewJWTManager("test-secret", -time.Minute)
	r, called, _ := newAuthRouter(jwt)

	tok, _, err := expired.Issue("u1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, *called)
}

func TestAuth_ValidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r, called, seenUserID := newAuthRouter(jwt)

	tok, _, err := jwt.Issue("u1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, *called)
	require.Equal(t, "u1", *seenUserID)
}

func TestBearerToken_Parsing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc.def.ghi", "abc.def.ghi"},
		{"bearer abc.def.ghi", "abc.def.ghi"},
		{"Basic dXNlcjpwYXNz", ""},
		{"Bearer", ""},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			c.Request.Header.Set("Authorization", tc.header)
		}
		require.Equal(t, tc.want, bearerToken(c), "header %q", tc.header)
	}
}
