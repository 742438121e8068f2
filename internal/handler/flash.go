package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

const flashCookieName = "fyyur_flash"

// Flash carries one-shot user messages across a redirect in a cookie.
type Flash struct {
	Secure bool
}

func NewFlash(secure bool) *Flash {
	return &Flash{Secure: secure}
}

// Add queues msgs for the next page rendered for this client.
func (f *Flash) Add(c echo.Context, msgs ...string) {
	pending := append(f.peek(c), msgs...)
	raw, err := json.Marshal(pending)
	if err != nil {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		Secure:   f.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(flashCookieName, pending)
}

// Pop returns the queued messages and clears them.
func (f *Flash) Pop(c echo.Context) []string {
	msgs := f.peek(c)
	if len(msgs) == 0 {
		return nil
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   f.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(flashCookieName, []string(nil))
	return msgs
}

// peek prefers messages added during this request over the request cookie.
func (f *Flash) peek(c echo.Context) []string {
	if v := c.Get(flashCookieName); v != nil {
		msgs, _ := v.([]string)
		return msgs
	}
	cookie, err := c.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var msgs []string
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil
	}
	return msgs
}
