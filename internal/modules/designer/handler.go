package designer

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"

	"github.com/nfrund/cardforge/internal/card"
	"github.com/nfrund/cardforge/internal/editor"
	"github.com/nfrund/cardforge/internal/handlers"
	"github.com/nfrund/cardforge/internal/middleware"
	"github.com/nfrund/cardforge/internal/modules/designer/view"
	"github.com/nfrund/cardforge/internal/render"
	"github.com/nfrund/cardforge/internal/rendering"
	gview "github.com/nfrund/cardforge/internal/view"
)

// Handler serves the designer pages and the htmx actions behind them.
type Handler struct {
	store    *editor.Store
	renderer rendering.Renderer
}

// NewHandler creates a Handler.
func NewHandler(store *editor.Store, renderer rendering.Renderer) *Handler {
	return &Handler{store: store, renderer: renderer}
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// Page renders the full editor.
func (h *Handler) Page(c echo.Context) error {
	ed := h.editorFor(c)
	return h.renderer.RenderPage(c, http.StatusOK, view.Page(ed.Snapshot(), gview.GetFlashData(c)))
}

// UpdateField replaces one text field and returns the refreshed preview.
func (h *Handler) UpdateField(c echo.Context) error {
	var req FieldRequest
	if err := handlers.BindAndValidate(c, &req); err != nil {
		return err
	}
	field, err := card.ParseField(req.Field)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ed := h.editorFor(c)
	s, err := ed.Apply(c.Request().Context(), editor.SetField{Field: field, Value: req.Value})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return h.renderer.RenderPage(c, http.StatusOK, view.Preview(s))
}

// UploadLogo decodes the uploaded image into the card logo. Decode failures
// are reported as a notice, not an error page.
func (h *Handler) UploadLogo(c echo.Context) error {
	var req LogoRequest
	if err := handlers.BindAndValidate(c, &req); err != nil {
		return err
	}

	src, err := req.Logo.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to open uploaded file").SetInternal(err)
	}
	defer src.Close()

	ed := h.editorFor(c)
	s, err := ed.UploadLogo(c.Request().Context(), src)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Info("Logo rejected",
			"filename", req.Logo.Filename, "size", req.Logo.Size, "error", err)
	}
	return h.respond(c, s, err)
}

// RemoveLogo reverts the card to the wordmark.
func (h *Handler) RemoveLogo(c echo.Context) error {
	ed := h.editorFor(c)
	s, err := ed.Apply(c.Request().Context(), editor.ClearLogo{})
	return h.respond(c, s, err)
}

// GenerateTagline asks the suggestion service for a tagline. It blocks
// until the service answers or the request goes away.
func (h *Handler) GenerateTagline(c echo.Context) error {
	ed := h.editorFor(c)
	s, err := ed.GenerateTagline(c.Request().Context())
	return h.respond(c, s, err)
}

// CancelTagline aborts an outstanding tagline request and answers once it
// has settled, so the response never shows a stale Requesting state.
func (h *Handler) CancelTagline(c echo.Context) error {
	ed := h.editorFor(c)
	ed.CancelGeneration()
	return h.respond(c, ed.AwaitGeneration(c.Request().Context()), nil)
}

// SetSide flips the previewed side.
func (h *Handler) SetSide(c echo.Context) error {
	var req SideRequest
	if err := handlers.BindAndValidate(c, &req); err != nil {
		return err
	}
	ed := h.editorFor(c)
	s, err := ed.Apply(c.Request().Context(), editor.SetSide{Side: render.Side(req.Side)})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return h.respond(c, s, nil)
}

// SetTheme switches the card theme.
func (h *Handler) SetTheme(c echo.Context) error {
	var req ThemeRequest
	if err := handlers.BindAndValidate(c, &req); err != nil {
		return err
	}
	ed := h.editorFor(c)
	s, err := ed.Apply(c.Request().Context(), editor.SetTheme{Theme: render.ThemeID(req.Theme)})
	if errors.Is(err, render.ErrUnknownTheme) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return h.respond(c, s, err)
}

// Print renders both faces for printing.
func (h *Handler) Print(c echo.Context) error {
	ed := h.editorFor(c)
	return h.renderer.RenderPage(c, http.StatusOK, view.PrintPage(ed.Snapshot()))
}

// VCard downloads the card as a contact file.
func (h *Handler) VCard(c echo.Context) error {
	ed := h.editorFor(c)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="card.vcf"`)
	return c.Blob(http.StatusOK, "text/vcard; charset=utf-8", []byte(card.VCard(ed.Snapshot().Card)))
}

// QRCode serves a PNG QR code of the card's vCard.
func (h *Handler) QRCode(c echo.Context) error {
	var req QRRequest
	if err := handlers.BindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Size == 0 {
		req.Size = card.QRDefaultSize
	}

	ed := h.editorFor(c)
	png, err := card.QRCode(ed.Snapshot().Card, req.Size)
	if err != nil {
		return fmt.Errorf("failed to encode qr code: %w", err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.Blob(http.StatusOK, "image/png", png)
}

// respond answers an action that changes the designer. User-facing errors
// become notices; anything else is returned to echo.
func (h *Handler) respond(c echo.Context, s editor.State, err error) error {
	notice := editor.Notice(err)
	if err != nil && notice == "" {
		return err
	}

	if !isHTMX(c) {
		if notice != "" {
			gview.SetFlashError(c, notice)
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}

	nodes := cmp.Group{view.Designer(s)}
	if notice != "" {
		nodes = append(nodes, gview.OOBNotice(notice, true))
	}
	return h.renderer.RenderPage(c, http.StatusOK, nodes)
}
