package middleware

import "github.com/labstack/echo/v4"

// DevUserID is the account DevLogin signs every request in as.
const DevUserID = "dev-user"

// DevLogin fills in a fixed user for requests that have no session. Local
// development only.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if uid, _ := c.Get("uid").(string); uid == "" {
				uid = DevUserID
				if q := c.QueryParam("uid"); q != "" {
					uid = q
				}
				c.Set("uid", uid)
			}
			return next(c)
		}
	}
}
