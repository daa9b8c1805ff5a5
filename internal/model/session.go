package model

import "time"

const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Session is the server-side state behind the session cookie. An empty
// Username means the session is anonymous.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username,omitempty"`
	Flashes   []Flash   `json:"flashes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) Authenticated() bool {
	return s != nil && s.Username != ""
}

// Clone returns a deep copy so stores never share slices with callers.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	if s.Flashes != nil {
		out.Flashes = append([]Flash(nil), s.Flashes...)
	}
	return &out
}
