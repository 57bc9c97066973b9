package models

import "time"

// Profile is the single-row user summary shown above the collections.
type Profile struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	UserName       string `json:"user_name"`
	UserNickname   string `json:"user_nickname"`
	UserPhoto      string `json:"user_photo"`
	Stars          int    `json:"stars"`
	Level          int    `json:"level"`
	NextLevelStars int    `json:"next_level_stars"`

	// LastUpdated is the moment of the last successful fetch. It is set by
	// the cache store and never sent by the server.
	LastUpdated time.Time `json:"-"`
}

// UpdateProfileRequest changes the display name and/or nickname.
type UpdateProfileRequest struct {
	UserID       int64   `json:"user_id"`
	Token        string  `json:"token"`
	Action       string  `json:"action"`
	UserName     *string `json:"user_name,omitempty"`
	UserNickname *string `json:"user_nickname,omitempty"`
}

// UpdatePasswordRequest changes the account password.
type UpdatePasswordRequest struct {
	UserID          int64  `json:"user_id"`
	Token           string `json:"token"`
	Action          string `json:"action"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UpdateAvatarRequest uploads a new avatar encoded as base64.
type UpdateAvatarRequest struct {
	UserID       int64  `json:"user_id"`
	Token        string `json:"token"`
	Action       string `json:"action"`
	AvatarBase64 string `json:"avatar_base64"`
}
