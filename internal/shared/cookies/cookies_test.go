package cookies

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planet-builder/internal/shared/config"
)

func withConfig(t *testing.T, frontendURL string, secure bool) {
	t.Helper()
	previous := config.GlobalConfig
	config.GlobalConfig = &config.Config{
		Auth: config.AuthConfig{
			TokenExpiration: 2 * time.Hour,
			CookieSecure:    secure,
			CookieSameSite:  "strict",
		},
		Frontend: config.FrontendConfig{URL: frontendURL},
	}
	t.Cleanup(func() { config.GlobalConfig = previous })
}

func TestSetAuthCookie(t *testing.T) {
	withConfig(t, "https://planets.example.com", true)

	w := httptest.NewRecorder()
	SetAuthCookie(w, "signed-token")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, AuthCookieName, c.Name)
	assert.Equal(t, "signed-token", c.Value)
	assert.Equal(t, 7200, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, "planets.example.com", c.Domain)
}

func TestClearAuthCookie(t *testing.T) {
	withConfig(t, "http://localhost:3000", false)

	w := httptest.NewRecorder()
	ClearAuthCookie(w)

	c := w.Result().Cookies()[0]
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
	assert.Empty(t, c.Domain)
}

func TestTokenFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	assert.Empty(t, TokenFromRequest(r))

	r.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "abc"})
	assert.Equal(t, "abc", TokenFromRequest(r))
}

func TestParseSameSite(t *testing.T) {
	assert.Equal(t, http.SameSiteStrictMode, parseSameSite("Strict"))
	assert.Equal(t, http.SameSiteNoneMode, parseSameSite("none"))
	assert.Equal(t, http.SameSiteLaxMode, parseSameSite("bogus"))
}
