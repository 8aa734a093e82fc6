package editor

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/nfrund/cardforge/internal/pubsub"
)

// FieldChanged names the field and the new value's length. The value itself
// stays out of events since the audit log records every keystroke.
type FieldChanged struct {
	Field  string `json:"field"`
	Length int    `json:"length"`
}

type LogoChanged struct {
	Present bool `json:"present"`
	Size    int  `json:"size"`
}

type SideChanged struct {
	Side string `json:"side"`
}

type ThemeChanged struct {
	Theme string `json:"theme"`
}

type TaglineGenerated struct {
	Tagline string `json:"tagline"`
	Status  string `json:"status"`
	Source  string `json:"source,omitempty"`
	Error   string `json:"error,omitempty"`
}

var (
	FieldChangedEvent     = pubsub.NewEvent[FieldChanged]("card.field.changed", "A card text field was replaced")
	LogoChangedEvent      = pubsub.NewEvent[LogoChanged]("card.logo.changed", "A logo was uploaded or removed")
	SideChangedEvent      = pubsub.NewEvent[SideChanged]("card.side.changed", "The previewed side changed")
	ThemeChangedEvent     = pubsub.NewEvent[ThemeChanged]("card.theme.changed", "The card theme changed")
	TaglineGeneratedEvent = pubsub.NewEvent[TaglineGenerated]("card.tagline.generated", "A tagline request completed")
)

// Topic describes one event topic the editor publishes to.
type Topic struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog lists every topic the editor publishes to.
func Catalog() []Topic {
	return []Topic{
		{FieldChangedEvent.Name(), FieldChangedEvent.Description()},
		{LogoChangedEvent.Name(), LogoChangedEvent.Description()},
		{SideChangedEvent.Name(), SideChangedEvent.Description()},
		{ThemeChangedEvent.Name(), ThemeChangedEvent.Description()},
		{TaglineGeneratedEvent.Name(), TaglineGeneratedEvent.Description()},
	}
}

// Topics lists the topic names from Catalog.
func Topics() []string {
	var out []string
	for _, t := range Catalog() {
		out = append(out, t.Name)
	}
	return out
}

func (e *Editor) publish(ctx context.Context, a Action, s State) {
	var err error
	switch a := a.(type) {
	case SetField:
		err = pubsub.Publish(ctx, e.bus, FieldChangedEvent, e.id, FieldChanged{Field: string(a.Field), Length: utf8.RuneCountInString(a.Value)})
	case SetLogo:
		err = pubsub.Publish(ctx, e.bus, LogoChangedEvent, e.id, LogoChanged{Present: true, Size: len(a.URI)})
	case ClearLogo:
		err = pubsub.Publish(ctx, e.bus, LogoChangedEvent, e.id, LogoChanged{})
	case SetSide:
		err = pubsub.Publish(ctx, e.bus, SideChangedEvent, e.id, SideChanged{Side: string(s.Side)})
	case SetTheme:
		err = pubsub.Publish(ctx, e.bus, ThemeChangedEvent, e.id, ThemeChanged{Theme: string(s.Theme)})
	case taglineFinished, taglineAborted:
		ev := TaglineGenerated{
			Tagline: s.Card.Tagline,
			Status:  string(s.Generation.Status),
			Source:  string(s.Generation.Source),
		}
		if s.Generation.Err != nil {
			ev.Error = s.Generation.Err.Error()
		}
		err = pubsub.Publish(ctx, e.bus, TaglineGeneratedEvent, e.id, ev)
	default:
		return
	}
	if err != nil {
		slog.Warn("Failed to publish card event", "editor_id", e.id, "action", fmt.Sprintf("%T", a), "error", err)
	}
}

// SubscribeAudit logs one line per card event until ctx is cancelled.
func SubscribeAudit(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	for _, topic := range Topics() {
		err := sub.Subscribe(ctx, topic, func(ctx context.Context, msg pubsub.Message) error {
			logger.Info("Card event",
				"topic", msg.Topic,
				"editor_id", msg.EditorID,
				"payload", string(msg.Payload),
			)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
