package designer

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/cardforge/internal/editor"
	"github.com/nfrund/cardforge/internal/middleware"
)

const (
	editorSessionName = "cardforge-editor"
	editorIDKey       = "editor_id"
)

// editorFor returns the editor bound to the request's session, creating one
// and storing its id in the session cookie on first use or when the cookie
// cannot be decoded.
func (h *Handler) editorFor(c echo.Context) *editor.Editor {
	logger := middleware.FromContext(c.Request().Context())

	sess, err := session.Get(editorSessionName, c)
	if err != nil {
		if sess == nil {
			logger.Warn("Editor session unavailable; using a throwaway editor", "error", err)
			return h.store.GetOrCreate("")
		}
		// The cookie store still hands back a fresh session, e.g. for a
		// cookie signed with an older secret. Saving it replaces the cookie.
		logger.Info("Replacing unreadable editor session", "error", err)
	}

	id, _ := sess.Values[editorIDKey].(string)
	ed := h.store.GetOrCreate(id)
	if ed.ID() != id {
		sess.Values[editorIDKey] = ed.ID()
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			logger.Error("Failed to save editor session", "error", err)
		}
		logger.Debug("Started editor session", "editor_id", ed.ID())
	}
	return ed
}
