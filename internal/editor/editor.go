package editor

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/nfrund/cardforge/internal/card"
	"github.com/nfrund/cardforge/internal/pubsub"
	"github.com/nfrund/cardforge/internal/render"
	"github.com/nfrund/cardforge/internal/tagline"
)

// PreconditionNotice is shown when a tagline is requested too early.
const PreconditionNotice = "Please enter a Job Title and Company Name first."

var (
	// ErrTaglinePrecondition means the job title or company name is empty.
	ErrTaglinePrecondition = errors.New(PreconditionNotice)
	// ErrGenerationInProgress rejects a second tagline request while one is running.
	ErrGenerationInProgress = errors.New("a tagline is already being generated")
)

// Editor is one user's card session. All methods are safe for concurrent use.
type Editor struct {
	id        string
	suggester tagline.Suggester
	bus       pubsub.Publisher
	logoMax   int64

	mu       sync.Mutex
	state    State
	cancel   context.CancelFunc
	done     chan struct{} // closed when the running generation settles
	lastSeen time.Time
}

// Options configures a new Editor.
type Options struct {
	Suggester    tagline.Suggester
	Publisher    pubsub.Publisher
	Theme        render.ThemeID
	LogoMaxBytes int64
}

// New creates an editor holding the default card.
func New(id string, opts Options) *Editor {
	if opts.Suggester == nil {
		opts.Suggester = tagline.OfflineSuggester{}
	}
	if opts.Publisher == nil {
		opts.Publisher = pubsub.Discard{}
	}
	return &Editor{
		id:        id,
		suggester: opts.Suggester,
		bus:       opts.Publisher,
		logoMax:   opts.LogoMaxBytes,
		state:     NewState(opts.Theme),
		lastSeen:  time.Now(),
	}
}

// ID returns the session identifier of the editor.
func (e *Editor) ID() string {
	return e.id
}

// Snapshot returns a copy of the current state.
func (e *Editor) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Apply runs a through the reducer and publishes the matching card event.
func (e *Editor) Apply(ctx context.Context, a Action) (State, error) {
	e.mu.Lock()
	next, err := Reduce(e.state, a)
	if err != nil {
		s := e.state
		e.mu.Unlock()
		return s, err
	}
	e.state = next
	e.mu.Unlock()

	e.publish(ctx, a, next)
	return next, nil
}

// UploadLogo decodes an uploaded image and sets it as the card logo.
func (e *Editor) UploadLogo(ctx context.Context, r io.Reader) (State, error) {
	uri, err := card.DecodeLogo(r, e.logoMax)
	if err != nil {
		return e.Snapshot(), err
	}
	return e.Apply(ctx, SetLogo{URI: uri})
}

// GenerateTagline asks the suggester for a tagline and stores the result.
// It blocks until the request completes or is cancelled.
func (e *Editor) GenerateTagline(ctx context.Context) (State, error) {
	e.mu.Lock()
	if !e.state.Card.ReadyForTagline() {
		s := e.state
		e.mu.Unlock()
		return s, ErrTaglinePrecondition
	}
	if e.state.Generation.Status == StatusRequesting {
		s := e.state
		e.mu.Unlock()
		return s, ErrGenerationInProgress
	}
	job, company := e.state.Card.JobTitle, e.state.Card.CompanyName
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	e.cancel = cancel
	e.done = done
	e.state, _ = Reduce(e.state, taglineStarted{})
	e.mu.Unlock()
	defer cancel()

	res := e.suggester.Suggest(ctx, job, company)

	var finish Action = taglineFinished{Result: res}
	if err := ctx.Err(); err != nil {
		finish = taglineAborted{Err: err}
	}

	e.mu.Lock()
	e.cancel = nil
	e.done = nil
	e.state, _ = Reduce(e.state, finish)
	s := e.state
	e.mu.Unlock()
	close(done)

	e.publish(context.WithoutCancel(ctx), finish, s)
	return s, nil
}

// CancelGeneration aborts the running tagline request, if any. It reports
// whether there was one to cancel.
func (e *Editor) CancelGeneration() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel == nil {
		return false
	}
	e.cancel()
	return true
}

// AwaitGeneration waits for the running tagline request, if any, to settle
// and returns the resulting state. It gives up when ctx is done.
func (e *Editor) AwaitGeneration(ctx context.Context) State {
	e.mu.Lock()
	done := e.done
	e.mu.Unlock()

	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
		}
	}
	return e.Snapshot()
}

// Notice maps an editor error to the text shown to the user, or "" when
// err is not meant for users.
func Notice(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTaglinePrecondition):
		return PreconditionNotice
	case errors.Is(err, ErrGenerationInProgress):
		return "A tagline is already being generated."
	case errors.Is(err, card.ErrLogoTooLarge):
		return "That logo file is too large."
	case errors.Is(err, card.ErrNotAnImage):
		return "Please choose an image file for the logo."
	case errors.Is(err, card.ErrLogoDecode), errors.Is(err, card.ErrInvalidLogo):
		return "That logo could not be read."
	}
	return ""
}

func (e *Editor) touch(now time.Time) {
	e.mu.Lock()
	e.lastSeen = now
	e.mu.Unlock()
}

func (e *Editor) idleSince(now time.Time) time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Generation.Status == StatusRequesting {
		return 0
	}
	return now.Sub(e.lastSeen)
}
