package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/pkg/permissions"
	"github.com/meutimefc/api/pkg/token"
)

const (
	// CookieName carries the signed session token.
	CookieName = "auth_token"

	// ClaimsKey is where verified claims land in the gin context.
	ClaimsKey = "auth_claims"

	loginPath   = "/login"
	landingPath = "/"
)

// Page prefixes gated by the session middleware. The first two require an
// elevated role; referee and fan areas only require a valid session.
var elevatedPrefixes = map[string]string{
	"/admin":     permissions.RoleAdmin,
	"/organizer": permissions.RoleOrganizer,
}

// SessionGuard gatekeeps the protected page areas. It is a pure gate: no
// business logic, only authorization routing.
//
//   - no cookie: redirect to login, preserving the original path
//   - invalid/expired cookie: clear it and redirect to login
//   - valid cookie, wrong role for an elevated prefix: silent redirect to
//     the public landing page, never a 403
//   - otherwise: enrich the request with identity headers and continue
func SessionGuard(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			redirectToLogin(c)
			return
		}

		claims := token.Verify(tokenString, cfg.JWT.Secret)
		if claims == nil {
			clearCookie(c, cfg)
			redirectToLogin(c)
			return
		}

		for prefix, requiredRole := range elevatedPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) && claims.Role != requiredRole && claims.Role != permissions.RoleAdmin {
				c.Redirect(http.StatusFound, landingPath)
				c.Abort()
				return
			}
		}

		c.Request.Header.Set("X-User-Id", strconv.FormatUint(uint64(claims.UserID), 10))
		c.Request.Header.Set("X-User-Role", claims.Role)
		c.Request.Header.Set("X-Team-Id", strconv.FormatUint(uint64(claims.TeamID), 10))
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// APIAuth is the JSON-route variant of the gate: it accepts the session
// cookie or a Bearer header and answers 401 instead of redirecting.
func APIAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		claims := token.Verify(tokenString, cfg.JWT.Secret)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access"})
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequirePermission gates a JSON route on a permission key from the token.
func RequirePermission(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := GetClaims(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access"})
			return
		}
		for _, p := range claims.Permissions {
			if p == key {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access forbidden"})
	}
}

// GetClaims returns the verified session claims set by APIAuth/SessionGuard.
func GetClaims(c *gin.Context) (*token.Claims, error) {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, errors.New("no session claims in context")
	}
	claims, ok := v.(*token.Claims)
	if !ok {
		return nil, errors.New("session claims have unexpected type")
	}
	return claims, nil
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

func redirectToLogin(c *gin.Context) {
	callback := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, loginPath+"?callbackUrl="+callback)
	c.Abort()
}

func clearCookie(c *gin.Context, cfg *config.Config) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, "", -1, "/", "", cfg.IsProduction(), true)
}
