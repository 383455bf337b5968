package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	croprepo "greengreen/pkg/crop/repositoryImp"
	"greengreen/pkg/pricing/repositoryImp"
	"greengreen/pkg/pricing/service"
	"greengreen/pkg/pricing/serviceImp"
	"greengreen/pkg/testutil"
)

const table = `<html><body><table>
<tr><th>Crop</th><th>Low</th><th>High</th></tr>
<tr><td>Pea Shoots</td><td>20</td><td>30</td></tr>
</table></body></html>`

func newServer(t *testing.T, allow ...string) *echo.Echo {
	db := testutil.NewDB(t)
	testutil.SeedCrops(t, db, testutil.Crop("Pea Shoots"))
	h := New(serviceImp.NewPricingService(repositoryImp.New(db), croprepo.New(db), nil, zap.NewNop()), allow)
	e := echo.New()
	e.POST("/admin/pricing/import", h.Import)
	return e
}

func post(e *echo.Echo, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/admin/pricing/import", strings.NewReader(string(b)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestImportInlineHTML(t *testing.T) {
	e := newServer(t)
	rec := post(e, map[string]string{"html": table})
	require.Equal(t, http.StatusOK, rec.Code)
	var rep service.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, 1, rep.Accepted)
	assert.Equal(t, "inline", rep.Source)

	assert.Equal(t, http.StatusBadRequest, post(e, map[string]string{}).Code)
	assert.Equal(t, http.StatusBadRequest, post(e, map[string]string{"html": "<p>nothing</p>"}).Code)
}

func TestImportFromURL(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/report" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(table))
			return
		}
		http.NotFound(w, r)
	}))
	defer upstream.Close()
	u, _ := url.Parse(upstream.URL)

	e := newServer(t, u.Hostname())
	rec := post(e, map[string]string{"url": upstream.URL + "/report"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accepted":1`)

	assert.Equal(t, http.StatusBadGateway, post(e, map[string]string{"url": upstream.URL + "/missing"}).Code)
	assert.Equal(t, http.StatusBadRequest, post(e, map[string]string{"url": "ftp://example.org/x"}).Code)

	blocked := newServer(t)
	assert.Equal(t, http.StatusForbidden, post(blocked, map[string]string{"url": upstream.URL + "/report"}).Code)
}

func TestImportFollowsOnlyAllowedRedirects(t *testing.T) {
	var upstream *httptest.Server
	upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, _ := url.Parse(upstream.URL)
		switch r.URL.Path {
		case "/report":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(table))
		case "/moved":
			http.Redirect(w, r, "/report", http.StatusFound)
		case "/elsewhere":
			http.Redirect(w, r, "http://localhost:"+u.Port()+"/report", http.StatusFound)
		default:
			http.NotFound(w, r)
		}
	}))
	defer upstream.Close()
	u, _ := url.Parse(upstream.URL)

	e := newServer(t, u.Hostname())
	rec := post(e, map[string]string{"url": upstream.URL + "/moved"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"accepted":1`)

	rec = post(e, map[string]string{"url": upstream.URL + "/elsewhere"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "redirect to localhost not allowed")
}
