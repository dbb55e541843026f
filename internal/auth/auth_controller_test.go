package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/internal/user"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = "development"
	cfg.App.BaseURL = "http://localhost:3000"
	cfg.App.DefaultTeamID = 1
	cfg.JWT.Secret = "auth-test-secret"
	cfg.JWT.ExpiryHours = 24
	return cfg
}

func setupAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Per-test in-memory database to avoid cross-test interference.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &PasswordReset{}))

	cfg := testConfig()
	r := gin.New()
	api := r.Group("/api")
	RegisterAuthRoutes(api, db, cfg)
	return r, db, cfg
}

func httpDo(r *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := w.Result()
	for _, c := range res.Cookies() {
		if c.Name == "auth_token" {
			return c
		}
	}
	t.Fatal("no auth_token cookie in response")
	return nil
}

func TestRegisterLoginMeRoundTrip(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	w := httpDo(r, "POST", "/api/auth/register", gin.H{
		"email":    "alice@example.com",
		"password": "secret123",
		"teamId":   3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var reg AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	require.NotEmpty(t, reg.Token)
	require.Equal(t, "alice", reg.User.Name, "name defaults to the email local part")
	require.Equal(t, "fan", reg.User.Role)
	require.Equal(t, uint(3), reg.User.TeamID)
	require.Contains(t, reg.User.Permissions, "store:purchase")

	cookie := sessionCookie(t, w)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, 86400, cookie.MaxAge)
	require.False(t, cookie.Secure, "non-production cookies are not Secure")

	// Login with the same credentials.
	w = httpDo(r, "POST", "/api/auth/login", gin.H{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var login AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.Equal(t, reg.User.ID, login.User.ID)

	// The cookie authenticates /me.
	w = httpDo(r, "GET", "/api/auth/me", nil, sessionCookie(t, w))
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		User UserResponse `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	require.Equal(t, "alice@example.com", me.User.Email)
}

func TestRegisterDefaultsTeamAndPassword(t *testing.T) {
	r, db, cfg := setupAuthRouter(t)

	w := httpDo(r, "POST", "/api/auth/register", gin.H{"email": "bob@example.com"})
	require.Equal(t, http.StatusOK, w.Code)

	var reg AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	require.Equal(t, cfg.App.DefaultTeamID, reg.User.TeamID)

	// Even without a supplied password the row carries a hash.
	var u user.User
	require.NoError(t, db.First(&u, reg.User.ID).Error)
	require.True(t, u.HasPassword())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	w := httpDo(r, "POST", "/api/auth/register", gin.H{"email": "carol@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	w = httpDo(r, "POST", "/api/auth/register", gin.H{"email": "carol@example.com", "password": "other456"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterMissingEmail(t *testing.T) {
	r, _, _ := setupAuthRouter(t)
	w := httpDo(r, "POST", "/api/auth/register", gin.H{"name": "No Email"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginGenericFailures(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	w := httpDo(r, "POST", "/api/auth/register", gin.H{"email": "dave@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	// Unknown account and wrong password answer with the same body so
	// account existence stays hidden.
	w = httpDo(r, "POST", "/api/auth/login", gin.H{"email": "ghost@example.com", "password": "whatever1"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	unknownBody := w.Body.String()

	w = httpDo(r, "POST", "/api/auth/login", gin.H{"email": "dave@example.com", "password": "wrong-pass"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, unknownBody, w.Body.String())
}

func TestLoginMissingFields(t *testing.T) {
	r, _, _ := setupAuthRouter(t)
	w := httpDo(r, "POST", "/api/auth/login", gin.H{"email": "dave@example.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRateLimit(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	w := httpDo(r, "POST", "/api/auth/register", gin.H{"email": "eve@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	for i := 0; i < 5; i++ {
		w = httpDo(r, "POST", "/api/auth/login", gin.H{"email": "eve@example.com", "password": "wrong-pass"})
		require.Equal(t, http.StatusUnauthorized, w.Code, "attempt %d", i+1)
	}

	// The sixth attempt is rejected before credentials are checked, so even
	// the correct password cannot get through.
	w = httpDo(r, "POST", "/api/auth/login", gin.H{"email": "eve@example.com", "password": "secret123"})
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	// Another account from the same IP is unaffected.
	w = httpDo(r, "POST", "/api/auth/register", gin.H{"email": "frank@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	w = httpDo(r, "POST", "/api/auth/login", gin.H{"email": "frank@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestForgotPasswordAlwaysGeneric(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	w := httpDo(r, "POST", "/api/auth/register", gin.H{"email": "grace@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	// Existing account: generic message plus, outside production, the link.
	w = httpDo(r, "POST", "/api/auth/forgot-password", gin.H{"email": "grace@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	var withAccount map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &withAccount))
	require.Contains(t, withAccount, "dev_reset_link")

	// Unknown account: identical status and message, no link, no hint.
	w = httpDo(r, "POST", "/api/auth/forgot-password", gin.H{"email": "nobody@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	var withoutAccount map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &withoutAccount))
	require.NotContains(t, withoutAccount, "dev_reset_link")
	require.Equal(t, withAccount["message"], withoutAccount["message"])
}

func resetTokenFromLink(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	tok := u.Query().Get("token")
	require.NotEmpty(t, tok)
	return tok
}

func TestResetPasswordSingleUse(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	w := httpDo(r, "POST", "/api/auth/register", gin.H{"email": "heidi@example.com", "password": "oldpass1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = httpDo(r, "POST", "/api/auth/forgot-password", gin.H{"email": "heidi@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	resetToken := resetTokenFromLink(t, resp["dev_reset_link"].(string))
	require.Len(t, resetToken, 32)
	require.False(t, strings.ContainsAny(resetToken, "ghijklmnopqrstuvwxyz"), "token is hex")

	// First use succeeds and the new password works.
	w = httpDo(r, "POST", "/api/auth/reset-password", gin.H{"token": resetToken, "password": "newpass1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = httpDo(r, "POST", "/api/auth/login", gin.H{"email": "heidi@example.com", "password": "newpass1"})
	require.Equal(t, http.StatusOK, w.Code)
	w = httpDo(r, "POST", "/api/auth/login", gin.H{"email": "heidi@example.com", "password": "oldpass1"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Replaying the same link fails.
	w = httpDo(r, "POST", "/api/auth/reset-password", gin.H{"token": resetToken, "password": "another1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	r, db, _ := setupAuthRouter(t)

	w := httpDo(r, "POST", "/api/auth/register", gin.H{"email": "ivan@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	var reg AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))

	expired := &PasswordReset{
		ID:        "deadbeefdeadbeefdeadbeefdeadbeef",
		UserID:    reg.User.ID,
		Channel:   ChannelEmail,
		Contact:   "ivan@example.com",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(expired).Error)

	w = httpDo(r, "POST", "/api/auth/reset-password", gin.H{"token": expired.ID, "password": "newpass1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetPasswordUnknownToken(t *testing.T) {
	r, _, _ := setupAuthRouter(t)
	w := httpDo(r, "POST", "/api/auth/reset-password", gin.H{"token": "no-such-token", "password": "newpass1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	w := httpDo(r, "POST", "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)
	require.Empty(t, cookie.Value)
	require.Less(t, cookie.MaxAge, 0)
}

func TestMeWithoutSession(t *testing.T) {
	r, _, _ := setupAuthRouter(t)
	w := httpDo(r, "GET", "/api/auth/me", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
