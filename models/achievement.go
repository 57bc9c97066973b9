package models

// Achievement is a badge the user can unlock.
type Achievement struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Points      int     `json:"points"`
	IsCompleted bool    `json:"is_completed"`
	UnlockedAt  *string `json:"unlocked_at"`
}

func (a Achievement) EntityID() int64 { return a.ID }

// Collectible is an item (a cat) obtained as a quest reward.
type Collectible struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Rarity      string `json:"rarity"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	BaseValue   int    `json:"base_value"`
	ObtainedAt  string `json:"obtained_at"`
}

func (c Collectible) EntityID() int64 { return c.ID }

// LeaderboardEntry is one ranked user on the rating screen.
type LeaderboardEntry struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Photo    string `json:"photo"`
	Stars    int    `json:"stars"`
	Rank     int    `json:"rank"`
}

func (e LeaderboardEntry) EntityID() int64 { return e.ID }
