package models

// Session authorizes every gateway call and scopes every cache query.
// The token is opaque: it is never generated or validated on the client.
type Session struct {
	UserID int64  `json:"user_id"`
	Token  string `json:"token"`
	Email  string `json:"email,omitempty"`
}

// Valid reports whether the session can be used for authorized calls.
func (s Session) Valid() bool {
	return s.UserID > 0 && s.Token != ""
}
