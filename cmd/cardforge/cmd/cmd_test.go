package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/cardforge/internal/editor"
	"github.com/nfrund/cardforge/internal/render"
	"github.com/nfrund/cardforge/internal/storage"
	"github.com/nfrund/cardforge/internal/tagline"
)

type stubSuggester struct {
	job, company string
}

func (s *stubSuggester) Suggest(ctx context.Context, jobTitle, companyName string) tagline.Result {
	s.job, s.company = jobTitle, companyName
	return tagline.Result{Text: "Ship it", Source: tagline.SourceModel}
}

func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	orig := newStore
	newStore = func() storage.Store { return storage.NewAferoStore(fs) }
	t.Cleanup(func() { newStore = orig })
	return fs
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cardforge v"+version+"\n", out)
}

func TestThemesCmd(t *testing.T) {
	out, err := execute(t, "themes")
	require.NoError(t, err)

	for _, th := range render.Themes() {
		assert.Contains(t, out, string(th.ID()))
		assert.Contains(t, out, th.Name())
	}
	assert.Contains(t, out, "yes")
}

func TestRenderCmd(t *testing.T) {
	t.Run("writes both faces by default", func(t *testing.T) {
		fs := useMemFs(t)

		out, err := execute(t, "render", "--out", "cards/card.html")
		require.NoError(t, err)
		assert.Contains(t, out, "cards/card.html")

		html, err := afero.ReadFile(fs, "cards/card.html")
		require.NoError(t, err)
		assert.Contains(t, string(html), `data-face="front"`)
		assert.Contains(t, string(html), `data-face="back"`)
		assert.Contains(t, string(html), "Alex Morgan")
		assert.NotContains(t, string(html), "window.print")
	})

	t.Run("field overrides and single side", func(t *testing.T) {
		useMemFs(t)

		out, err := execute(t, "render", "--out", "-", "--side", "front", "--theme", "paper",
			"--field", "fullName=Sam Lee", "-f", "tagline=a=b")
		require.NoError(t, err)
		assert.Contains(t, out, "Sam Lee")
		assert.Contains(t, out, "a=b")
		assert.NotContains(t, out, `data-face="back"`)
	})

	t.Run("embeds a logo", func(t *testing.T) {
		fs := useMemFs(t)

		img := image.NewRGBA(image.Rect(0, 0, 4, 4))
		img.Set(1, 1, color.RGBA{R: 255, A: 255})
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, img))
		require.NoError(t, afero.WriteFile(fs, "logo.png", buf.Bytes(), 0644))

		out, err := execute(t, "render", "--out", "-", "--side", "front", "--logo", "logo.png")
		require.NoError(t, err)
		assert.Contains(t, out, "data:image/png;base64,")
	})

	t.Run("rejects bad input", func(t *testing.T) {
		fs := useMemFs(t)
		require.NoError(t, afero.WriteFile(fs, "notes.txt", []byte("hello"), 0644))

		cases := [][]string{
			{"render", "--theme", "neon"},
			{"render", "--side", "edge"},
			{"render", "--field", "fullName"},
			{"render", "--field", "nickname=x"},
			{"render", "--field", "logoUrl=data:image/png;base64,AA=="},
			{"render", "--logo", "missing.png"},
			{"render", "--logo", "notes.txt"},
		}
		for _, args := range cases {
			_, err := execute(t, args...)
			assert.Error(t, err, strings.Join(args, " "))
		}

		exists, err := afero.Exists(fs, "card.html")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestTaglineCmd(t *testing.T) {
	stub := &stubSuggester{}
	orig := newSuggester
	newSuggester = func() tagline.Suggester { return stub }
	t.Cleanup(func() { newSuggester = orig })

	out, err := execute(t, "tagline", "--job", "Baker", "--company", "Crumbs")
	require.NoError(t, err)
	assert.Equal(t, "Ship it\n", out)
	assert.Equal(t, "Baker", stub.job)
	assert.Equal(t, "Crumbs", stub.company)

	_, err = execute(t, "tagline", "--job", "Baker")
	assert.Error(t, err)
}

func TestEventsCmd(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		out, err := execute(t, "events")
		require.NoError(t, err)
		for _, name := range editor.Topics() {
			assert.Contains(t, out, name)
		}
		assert.Contains(t, out, "Total: 5 topics")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "events", "--format", "json")
		require.NoError(t, err)

		var got struct {
			Topics []editor.Topic `json:"topics"`
			Count  int            `json:"count"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, len(editor.Catalog()), got.Count)
		assert.Equal(t, editor.Catalog(), got.Topics)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := execute(t, "events", "--format", "yaml")
		assert.Error(t, err)
	})
}
