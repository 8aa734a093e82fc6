package view_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/cardforge/internal/view"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	return setupTestContextFor(httptest.NewRequest(http.MethodGet, "/", nil))
}

func setupTestContextFor(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	// Run a no-op handler through the middleware so the context carries the store.
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestFlashMessages(t *testing.T) {
	t.Run("Set and Get Success Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashSuccess(c, "It worked!")

		flashes := view.GetFlashData(c)
		assert.Equal(t, []string{"It worked!"}, flashes.Success)
		assert.Empty(t, flashes.Error)

		flashesAfterRead := view.GetFlashData(c)
		assert.True(t, flashesAfterRead.Empty(), "Flashes should be cleared after being read")
	})

	t.Run("Set and Get Error Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashError(c, "Please enter a Job Title and Company Name first.")

		flashes := view.GetFlashData(c)
		assert.Equal(t, []string{"Please enter a Job Title and Company Name first."}, flashes.Error)
		assert.Empty(t, flashes.Success)
	})

	t.Run("GetFlashData with no flashes set", func(t *testing.T) {
		c, _ := setupTestContext()
		assert.True(t, view.GetFlashData(c).Empty())
	})

	t.Run("No session middleware", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		assert.NotPanics(t, func() { view.SetFlashError(c, "lost") })
		assert.True(t, view.GetFlashData(c).Empty())
	})
}

// cookieSignedWith encodes a session cookie the way a server running with
// another secret would.
func cookieSignedWith(t *testing.T, secret, name string) *http.Cookie {
	t.Helper()
	store := sessions.NewCookieStore([]byte(secret))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	sess, err := store.New(req, name)
	require.NoError(t, err)
	sess.AddFlash("from an earlier process", "error")
	require.NoError(t, store.Save(req, rec, sess))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestFlashMessages_ReplacesUnreadableCookie(t *testing.T) {
	stale := cookieSignedWith(t, "secret-of-a-previous-process", "flash-session")

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(stale)
	c, rec := setupTestContextFor(req)
	view.SetFlashError(c, "That logo could not be read.")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "flash-session", cookies[0].Name)
	assert.NotEqual(t, stale.Value, cookies[0].Value)

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(cookies[0])
	c, _ = setupTestContextFor(next)
	assert.Equal(t, []string{"That logo could not be read."}, view.GetFlashData(c).Error)
}

func TestBase(t *testing.T) {
	var buf bytes.Buffer
	flashes := view.FlashData{Success: []string{"Saved"}, Error: []string{"Bad <input>"}}
	require.NoError(t, view.Base("Designer", flashes).Render(&buf))

	html := buf.String()
	assert.Contains(t, html, "<!doctype html>")
	assert.Contains(t, html, "<title>Designer - CardForge</title>")
	assert.Contains(t, html, `id="notices"`)
	assert.Contains(t, html, `data-notice="status"`)
	assert.Contains(t, html, `data-notice="alert"`)
	assert.Contains(t, html, "Bad &lt;input&gt;")
}

func TestOOBNotice(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, view.OOBNotice("Careful <now>", true).Render(&buf))

	out := buf.String()
	assert.Contains(t, out, `id="notices"`)
	assert.Contains(t, out, `hx-swap-oob="beforeend"`)
	assert.Contains(t, out, "Careful &lt;now&gt;")
	assert.Contains(t, out, `role="alert"`)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "CardForge", view.Title(""))
	assert.Equal(t, "Print - CardForge", view.Title("Print"))
}
