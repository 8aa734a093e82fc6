package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nfrund/cardforge/internal/config"
	"github.com/nfrund/cardforge/internal/editor"
	"github.com/nfrund/cardforge/internal/tagline"
)

func TestRegistry_SetGet(t *testing.T) {
	cfg := &config.Config{ServerAddr: ":1"}
	reg := New(cfg)
	assert.Same(t, cfg, reg.Config())

	_, ok := Get(reg, TaglineSuggesterKey)
	assert.False(t, ok)

	Set[tagline.Suggester](reg, TaglineSuggesterKey, tagline.OfflineSuggester{})
	got, ok := Get(reg, TaglineSuggesterKey)
	assert.True(t, ok)
	assert.IsType(t, tagline.OfflineSuggester{}, got)

	store := editor.NewStore(editor.Options{}, 0)
	Set(reg, EditorStoreKey, store)
	assert.Same(t, store, MustGet(reg, EditorStoreKey))
}

func TestRegistry_MustGetPanics(t *testing.T) {
	reg := New(&config.Config{})
	assert.Panics(t, func() { MustGet(reg, EditorStoreKey) })
}

func TestRegistry_WrongTypeIsMissing(t *testing.T) {
	reg := New(&config.Config{})
	Set(reg, Key[string]("designer.editors"), "not a store")

	_, ok := Get(reg, EditorStoreKey)
	assert.False(t, ok)
}
