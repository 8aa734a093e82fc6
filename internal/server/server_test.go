package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/cardforge/internal/app"
	"github.com/nfrund/cardforge/internal/config"
	"github.com/nfrund/cardforge/internal/pubsub"
	"github.com/nfrund/cardforge/internal/registry"
	"github.com/nfrund/cardforge/internal/rendering"
	"github.com/nfrund/cardforge/internal/tagline"
	"github.com/nfrund/cardforge/internal/testutils"
)

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	e := echo.New()

	// Capture slog output.
	var logBuffer bytes.Buffer
	handler := slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{
		AddSource: true,
	})
	originalLogger := slog.Default()
	slog.SetDefault(slog.New(handler))
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code, "Expected a 500 Internal Server Error response")

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)", "Log message should indicate an unhandled error")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"", "Log should contain the original error message")
	assert.Contains(t, logOutput, "stack_trace=", "Log must contain the stack_trace field")
	assert.Contains(t, logOutput, "runtime/debug/stack.go", "Stack trace should originate from the debug package")
	assert.Contains(t, logOutput, "internal/server/server_test.go", "Stack trace should point back to this test file")
}

func TestHTTPErrorHandler_HTTPErrorKeepsStatus(t *testing.T) {
	e := echo.New()
	setupErrorHandling(e)
	e.GET("/bad", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bad", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "nope")
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(Dependencies{Renderer: rendering.NewNodeRenderer()})
	assert.Error(t, err)

	_, err = New(Dependencies{Config: &config.Config{}})
	assert.Error(t, err)
}

// newTestServer assembles the server the way cmd/server does, with the
// offline tagline suggester.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := testutils.ConfigForTests(t, nil)
	reg := registry.New(cfg)
	registry.Set[tagline.Suggester](reg, registry.TaglineSuggesterKey, tagline.NewSuggester(cfg))

	bus := pubsub.NewWatermillBridge()
	renderer := rendering.NewNodeRenderer()

	s, err := New(Dependencies{Config: cfg, Renderer: renderer, Publisher: bus})
	require.NoError(t, err)

	mods := app.NewModules(app.Dependencies{Publisher: bus, Subscriber: bus, Renderer: renderer})
	require.NoError(t, s.InitModules(context.Background(), mods, reg))
	s.RegisterRoutes()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})
	return s
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_DesignerEndToEnd(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Designer - CardForge</title>")

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// Without an API key the offline fallback is used.
	req := httptest.NewRequest(http.MethodPost, "/card/tagline", strings.NewReader(""))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set("HX-Request", "true")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), tagline.FallbackNoCredential)
}

// newListeningServer builds a server bound to addr. Run owns its shutdown.
func newListeningServer(t *testing.T, addr string) *Server {
	t.Helper()

	cfg := testutils.ConfigForTests(t, map[string]string{"SERVER_ADDR": addr})
	s, err := New(Dependencies{Config: cfg, Renderer: rendering.NewNodeRenderer(), Publisher: pubsub.NewWatermillBridge()})
	require.NoError(t, err)
	s.RegisterRoutes()
	return s
}

func TestRun_ReturnsWhenListenerFails(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	s := newListeningServer(t, taken.Addr().String())

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server stopped unexpectedly")
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the listener failed")
	}
}

func TestRun_StopsWhenContextDone(t *testing.T) {
	s := newListeningServer(t, "127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
}
