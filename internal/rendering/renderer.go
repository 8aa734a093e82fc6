// Package rendering writes gomponents trees as HTTP responses.
package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
)

// Renderer defines the contract for turning component trees into HTML.
type Renderer interface {
	// RenderComponent renders a component to a slice of bytes. Useful for htmx fragments.
	RenderComponent(ctx context.Context, component cmp.Node) ([]byte, error)

	// RenderPage writes a full HTML response.
	RenderPage(c echo.Context, status int, component cmp.Node) error
}

// NodeRenderer renders gomponents nodes and doubles as echo's Renderer.
type NodeRenderer struct{}

// NewNodeRenderer creates a new NodeRenderer instance.
func NewNodeRenderer() *NodeRenderer {
	return &NodeRenderer{}
}

// RenderComponent implements the Renderer interface.
func (r *NodeRenderer) RenderComponent(ctx context.Context, component cmp.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := component.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface. The component is rendered
// into memory first so a failure still produces a clean 500.
func (r *NodeRenderer) RenderPage(c echo.Context, status int, component cmp.Node) error {
	body, err := r.RenderComponent(c.Request().Context(), component)
	if err != nil {
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements the echo.Renderer interface for use with c.Render(status, name, component).
// The name is ignored; the component is passed as data.
func (r *NodeRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	node, ok := data.(cmp.Node)
	if !ok {
		return fmt.Errorf("unsupported component type: %T", data)
	}
	return node.Render(w)
}
