package registry

import (
	"github.com/nfrund/cardforge/internal/editor"
	"github.com/nfrund/cardforge/internal/tagline"
)

// Service keys shared between modules.
var (
	TaglineSuggesterKey = Key[tagline.Suggester]("tagline.suggester")
	EditorStoreKey      = Key[*editor.Store]("designer.editors")
)
