package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorafields/lavenderlog/utils"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newAuthedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/whoami", AuthRequired(), func(ctx *gin.Context) {
		username, _ := ctx.Get(ContextUsernameKey)
		ctx.JSON(http.StatusOK, gin.H{"username": username})
	})
	return r
}

func request(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredRejectsBadHeaders(t *testing.T) {
	r := newAuthedRouter()

	cases := map[string]string{
		"missing header":  "",
		"no scheme":       "token-without-scheme",
		"wrong scheme":    "Basic dXNlcjpwYXNz",
		"empty bearer":    "Bearer ",
		"malformed token": "Bearer not.a.jwt",
	}
	for name, header := range cases {
		w := request(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	r := newAuthedRouter()

	token, err := utils.GenerateToken(7, "rowan", time.Hour)
	require.NoError(t, err)

	w := request(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rowan")
}

func TestAuthRequiredRejectsBlacklistedToken(t *testing.T) {
	r := newAuthedRouter()

	token, err := utils.GenerateToken(8, "revoked-user", time.Hour)
	require.NoError(t, err)
	utils.BlacklistToken(token, time.Now().Add(time.Hour))

	w := request(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
