package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agewithcare/policyhub/internal/shared/config"
	"github.com/agewithcare/policyhub/internal/shared/constants"
)

// SetSessionCookie stores the opaque session id as an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, cookieCfg config.CookieConfig, sessionID string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieCfg.SameSite))
	c.SetCookie(
		constants.SessionCookieName,
		sessionID,
		maxAge,
		cookiePath(cookieCfg),
		cookieCfg.Domain,
		cookieCfg.Secure,
		true, // HttpOnly, always
	)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, cookieCfg config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieCfg.SameSite))
	c.SetCookie(
		constants.SessionCookieName,
		"",
		-1,
		cookiePath(cookieCfg),
		cookieCfg.Domain,
		cookieCfg.Secure,
		true,
	)
}

// GetSessionCookie returns the session id from the request cookie, or "".
func GetSessionCookie(c *gin.Context) string {
	value, err := c.Cookie(constants.SessionCookieName)
	if err != nil {
		return ""
	}
	return value
}

func cookiePath(cookieCfg config.CookieConfig) string {
	if cookieCfg.Path == "" {
		return "/"
	}
	return cookieCfg.Path
}

func parseSameSite(value string) http.SameSite {
	switch value {
	case "Strict", "strict":
		return http.SameSiteStrictMode
	case "None", "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
