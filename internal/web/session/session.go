// Package session wraps gin-contrib/sessions with the handful of
// operations the application needs: logging users in and out, resolving
// the current visitor, and one-shot flash messages.
package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"bloghub/internal/web/models"
)

func init() {
	// flash messages ride the cookie store, which gob-encodes values
	gob.Register(Message{})
}

const (
	keyUserID   = "userID"
	keyUserName = "userName"
)

// Flash categories, rendered as CSS classes by the views.
const (
	FlashError   = "error"
	FlashWarning = "warning"
)

// Message is a flashed notice delivered to the next rendered view.
type Message struct {
	Text     string
	Category string
}

// LogIn records the user in the session. Called after signup and login.
func LogIn(c *gin.Context, user *models.User) error {
	s := sessions.Default(c)
	s.Set(keyUserID, user.ID)
	s.Set(keyUserName, user.Name)
	return s.Save()
}

// LogOut is the full teardown: it drops every session value and expires
// the cookie, rather than deleting individual keys.
func LogOut(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	return s.Save()
}

// CurrentUserID returns the authenticated user's id, or false for an
// anonymous visitor.
func CurrentUserID(c *gin.Context) (int64, bool) {
	s := sessions.Default(c)
	raw := s.Get(keyUserID)
	if raw == nil {
		return 0, false
	}
	id, ok := raw.(int64)
	if !ok {
		return 0, false
	}
	return id, true
}

// CurrentUserName returns the stored display name, empty for anonymous.
func CurrentUserName(c *gin.Context) string {
	s := sessions.Default(c)
	if name, ok := s.Get(keyUserName).(string); ok {
		return name
	}
	return ""
}

// Flash attaches a one-shot message to the session.
func Flash(c *gin.Context, text, category string) {
	s := sessions.Default(c)
	s.AddFlash(Message{Text: text, Category: category})
	_ = s.Save()
}

// TakeFlashes drains pending flash messages for rendering.
func TakeFlashes(c *gin.Context) []Message {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) > 0 {
		_ = s.Save()
	}
	msgs := make([]Message, 0, len(raw))
	for _, f := range raw {
		if m, ok := f.(Message); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}
