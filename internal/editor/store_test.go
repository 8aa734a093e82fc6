package editor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nfrund/cardforge/internal/render"
)

type StoreTestSuite struct {
	suite.Suite
	now   time.Time
	store *Store
}

func (suite *StoreTestSuite) SetupTest() {
	suite.now = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	suite.store = NewStore(Options{Theme: render.ThemeAurora}, time.Hour)
	suite.store.now = func() time.Time { return suite.now }
}

func (suite *StoreTestSuite) TestGetOrCreate() {
	e := suite.store.GetOrCreate("")
	suite.NotEmpty(e.ID())
	suite.Equal(render.ThemeAurora, e.Snapshot().Theme)
	suite.Same(e, suite.store.GetOrCreate(e.ID()))

	other := suite.store.GetOrCreate("forged-id")
	suite.NotSame(e, other)
	suite.NotEqual("forged-id", other.ID())
	suite.Equal(2, suite.store.Len())
}

func (suite *StoreTestSuite) TestEvictsIdleEditors() {
	stale := suite.store.GetOrCreate("")
	suite.now = suite.now.Add(30 * time.Minute)
	fresh := suite.store.GetOrCreate("")

	suite.now = suite.now.Add(45 * time.Minute)
	_, ok := suite.store.Get(stale.ID())
	suite.False(ok)

	got, ok := suite.store.Get(fresh.ID())
	suite.True(ok)
	suite.Same(fresh, got)
	suite.Equal(1, suite.store.Len())
}

func (suite *StoreTestSuite) TestAccessKeepsEditorAlive() {
	e := suite.store.GetOrCreate("")
	for i := 0; i < 3; i++ {
		suite.now = suite.now.Add(50 * time.Minute)
		suite.Same(e, suite.store.GetOrCreate(e.ID()))
	}
	suite.Equal(1, suite.store.Len())
}

func (suite *StoreTestSuite) TestDefaultTTL() {
	suite.Equal(DefaultIdleTTL, NewStore(Options{}, 0).ttl)
}

func TestStore(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
