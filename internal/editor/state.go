// Package editor owns the interactive state of one card being designed and
// the tagline generation task that runs against it.
package editor

import (
	"errors"
	"fmt"

	"github.com/nfrund/cardforge/internal/card"
	"github.com/nfrund/cardforge/internal/render"
	"github.com/nfrund/cardforge/internal/tagline"
)

// ErrUnknownAction is returned by Reduce for actions it does not handle.
var ErrUnknownAction = errors.New("unknown editor action")

// Status is the lifecycle of the tagline generation task.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusRequesting Status = "requesting"
	StatusDone       Status = "done"
	StatusFailed     Status = "failed"
)

// Generation describes the most recent tagline request.
type Generation struct {
	Status Status
	Source tagline.Source
	Err    error
}

// State is everything the editor page renders from.
type State struct {
	Card       card.Data
	Side       render.Side
	Theme      render.ThemeID
	Generation Generation
}

// NewState returns the state shown on first load.
func NewState(theme render.ThemeID) State {
	if _, err := render.Lookup(theme); err != nil {
		theme = render.DefaultTheme
	}
	return State{
		Card:       card.Default(),
		Side:       render.SideFront,
		Theme:      theme,
		Generation: Generation{Status: StatusIdle},
	}
}

// Action is a state transition understood by Reduce.
type Action interface {
	action()
}

// SetField replaces one text field.
type SetField struct {
	Field card.Field
	Value string
}

// SetLogo stores an uploaded logo data URI.
type SetLogo struct {
	URI string
}

// ClearLogo reverts to the built-in wordmark.
type ClearLogo struct{}

// SetSide selects the previewed face.
type SetSide struct {
	Side render.Side
}

// SetTheme selects the visual theme.
type SetTheme struct {
	Theme render.ThemeID
}

type taglineStarted struct{}

type taglineFinished struct {
	Result tagline.Result
}

type taglineAborted struct {
	Err error
}

func (SetField) action()        {}
func (SetLogo) action()         {}
func (ClearLogo) action()       {}
func (SetSide) action()         {}
func (SetTheme) action()        {}
func (taglineStarted) action()  {}
func (taglineFinished) action() {}
func (taglineAborted) action()  {}

// Reduce applies a to s and returns the new state. On error s is returned
// unchanged.
func Reduce(s State, a Action) (State, error) {
	next := s
	switch a := a.(type) {
	case SetField:
		if err := next.Card.Set(a.Field, a.Value); err != nil {
			return s, err
		}
	case SetLogo:
		if err := next.Card.SetLogo(a.URI); err != nil {
			return s, err
		}
	case ClearLogo:
		next.Card.ClearLogo()
	case SetSide:
		side, err := render.ParseSide(string(a.Side))
		if err != nil {
			return s, err
		}
		next.Side = side
	case SetTheme:
		if _, err := render.Lookup(a.Theme); err != nil {
			return s, err
		}
		next.Theme = a.Theme
	case taglineStarted:
		next.Generation = Generation{Status: StatusRequesting}
	case taglineFinished:
		next.Card.Tagline = a.Result.Text
		next.Generation = Generation{Status: StatusDone, Source: a.Result.Source}
		if a.Result.Source == tagline.SourceError {
			next.Generation.Status = StatusFailed
			next.Generation.Err = a.Result.Err
		}
	case taglineAborted:
		next.Generation = Generation{Status: StatusFailed, Err: a.Err}
	default:
		return s, fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}
	return next, nil
}
