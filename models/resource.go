// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data types shared by the transport, storage and
// synchronization layers of the quest client.
package models

// ResourceKind names an independently loaded data category.
type ResourceKind string

const (
	KindProfile         ResourceKind = "profile"
	KindQuests          ResourceKind = "quests"
	KindAchievements    ResourceKind = "achievements"
	KindCollectibles    ResourceKind = "collectibles"
	KindLeaderboard     ResourceKind = "leaderboard"
	KindAvailableQuests ResourceKind = "available_quests"
)

func (k ResourceKind) String() string {
	return string(k)
}

// Entity is implemented by every server-side item that can appear in a
// paginated collection. EntityID is unique within one kind and one user.
type Entity interface {
	EntityID() int64
}

// Page is one decoded page of a paginated server response.
type Page[T any] struct {
	Items   []T
	Total   int
	Page    int
	Limit   int
	HasMore bool

	// CurrentUserRank is only reported by the leaderboard.
	CurrentUserRank *int
}

// CachedRow is a locally persisted snapshot of one server entity together
// with the owner and the server page it was last fetched on.
type CachedRow[T any] struct {
	UserID int64
	Page   int
	Item   T
}

// Items unwraps the payloads of rows preserving their order.
func Items[T any](rows []CachedRow[T]) []T {
	items := make([]T, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.Item)
	}
	return items
}

// NewCachedRows tags every item with its owner and page.
func NewCachedRows[T any](userID int64, page int, items []T) []CachedRow[T] {
	rows := make([]CachedRow[T], 0, len(items))
	for _, item := range items {
		rows = append(rows, CachedRow[T]{UserID: userID, Page: page, Item: item})
	}
	return rows
}
