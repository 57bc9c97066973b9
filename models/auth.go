package models

// Credentials carry the fields used by every auth_service action.
// Unused fields are omitted from the request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Code     string `json:"code,omitempty"`
}

// AuthRequest is the request body of auth_service.
type AuthRequest struct {
	Credentials
	Action string `json:"action"`
}

// AuthResult is returned by login and registration confirmation.
// Steps that only trigger an email leave UserID and Token empty.
type AuthResult struct {
	UserID  int64  `json:"user_id"`
	Email   string `json:"email"`
	Token   string `json:"token"`
	Message string `json:"-"`
}

// Session converts a successful auth result into a session.
func (r AuthResult) Session() Session {
	return Session{UserID: r.UserID, Token: r.Token, Email: r.Email}
}

// Notification is the payload of the daily reminder endpoint.
type Notification struct {
	Message   string
	Timestamp int64
}
