package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// SessionCookie carries the signed session token.
const SessionCookie = "gg_session"

// TokenParser resolves a session token to a user id.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// Session sets "uid" on the context when the request carries a valid session
// cookie or bearer token. Requests without one pass through anonymously.
func Session(p TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok := ""
			if ck, err := c.Cookie(SessionCookie); err == nil {
				tok = ck.Value
			}
			if h := c.Request().Header.Get(echo.HeaderAuthorization); tok == "" && strings.HasPrefix(h, "Bearer ") {
				tok = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			}
			if tok != "" {
				if uid, err := p.ParseToken(tok); err == nil {
					c.Set("uid", uid)
				}
			}
			return next(c)
		}
	}
}

// RequireUser rejects requests that have no resolved user.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if uid, _ := c.Get("uid").(string); uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects requests whose user id is not in admins. It expects
// RequireUser to have run first.
func RequireAdmin(admins []string) echo.MiddlewareFunc {
	allow := make(map[string]bool, len(admins))
	for _, id := range admins {
		allow[id] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if uid, _ := c.Get("uid").(string); !allow[uid] {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin only"})
			}
			return next(c)
		}
	}
}
