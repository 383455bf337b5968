package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"greengreen/pkg/auth/repositoryImp"
	"greengreen/pkg/auth/serviceImp"
	"greengreen/pkg/middleware"
	"greengreen/pkg/testutil"
)

func newServer(t *testing.T) *echo.Echo {
	svc := serviceImp.NewAuthService(repositoryImp.New(testutil.NewDB(t)), "secret", time.Hour, zap.NewNop())
	h := NewAuthController(svc, time.Hour)

	e := echo.New()
	e.Use(middleware.Session(svc))
	e.POST("/auth/signup", h.Signup)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/logout", h.Logout)
	e.GET("/auth/whoami", h.WhoAmI, middleware.RequireUser())
	return e
}

func post(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			return ck
		}
	}
	t.Fatal("no session cookie")
	return nil
}

func TestSignupLoginWhoAmI(t *testing.T) {
	e := newServer(t)

	rec := post(e, "/auth/signup", `{"email":"g@example.com","password":"password1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	ck := sessionCookie(t, rec)
	assert.True(t, ck.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/auth/whoami", nil)
	req.AddCookie(ck)
	who := httptest.NewRecorder()
	e.ServeHTTP(who, req)
	assert.Equal(t, http.StatusOK, who.Code)
	assert.NotContains(t, who.Body.String(), `"uid":""`)

	assert.Equal(t, http.StatusConflict, post(e, "/auth/signup", `{"email":"g@example.com","password":"password1"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, post(e, "/auth/login", `{"email":"g@example.com","password":"nope-nope"}`).Code)
	assert.Equal(t, http.StatusOK, post(e, "/auth/login", `{"email":"g@example.com","password":"password1"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(e, "/auth/signup", `{"email":"x@example.com","password":"short"}`).Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	e := newServer(t)
	rec := post(e, "/auth/logout", `{}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	ck := sessionCookie(t, rec)
	assert.Empty(t, ck.Value)
	assert.Less(t, ck.MaxAge, 0)
}

func TestWhoAmIRequiresSession(t *testing.T) {
	e := newServer(t)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
