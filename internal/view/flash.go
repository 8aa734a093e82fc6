package view

import (
	"log/slog"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
)

// FlashData holds the messages waiting to be shown on the next full page.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		if sess == nil {
			slog.Warn("Flash session unavailable", "error", err)
			return
		}
		// Fresh session in place of an unreadable cookie; saving overwrites it.
		slog.Info("Replacing unreadable flash session", "error", err)
	}
	sess.AddFlash(message, key)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.Warn("Failed to save flash session", "error", err)
	}
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	var out FlashData

	sess, err := session.Get(flashSessionName, c)
	if err != nil || sess == nil {
		return out
	}

	// Flashes() reads and clears in one go.
	out.Success = toStrings(sess.Flashes(flashKeySuccess))
	out.Error = toStrings(sess.Flashes(flashKeyError))

	// Save only when something was consumed so the clearing persists.
	if !out.Empty() {
		_ = sess.Save(c.Request(), c.Response())
	}
	return out
}

func toStrings(values []interface{}) []string {
	var out []string
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
