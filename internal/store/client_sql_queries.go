// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// Cache table names.
const (
	tableProfile      = "user_profile"
	tableQuests       = "user_quests"
	tableAchievements = "user_achievements"
	tableCollectibles = "user_collectibles"
)

// collectionTables lists every paginated cache table, used by logout.
var collectionTables = []string{tableQuests, tableAchievements, tableCollectibles}

var profileColumns = []string{
	"user_id",
	"email",
	"user_name",
	"user_nickname",
	"user_photo",
	"stars",
	"level",
	"next_level_stars",
	"last_updated",
}

func selectCollectionRows(table string, userID int64) sq.SelectBuilder {
	return sq.Select("id", "user_id", "page", "payload").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("page ASC", "id ASC")
}

func deleteCollectionPage(table string, userID int64, page int) sq.DeleteBuilder {
	return sq.Delete(table).Where(sq.Eq{"user_id": userID, "page": page})
}

func deleteCollectionRows(table string, userID int64) sq.DeleteBuilder {
	return sq.Delete(table).Where(sq.Eq{"user_id": userID})
}

// replaceCollectionRows relies on the (id, user_id) primary key: a row that
// already exists on another page is moved, never duplicated.
func replaceCollectionRows(table string, rows []rawRow, now time.Time) sq.InsertBuilder {
	q := sq.Replace(table).Columns("id", "user_id", "page", "payload", "updated_at")
	for _, r := range rows {
		q = q.Values(r.ID, r.UserID, r.Page, string(r.Payload), now)
	}
	return q
}

func selectProfile(userID int64) sq.SelectBuilder {
	return sq.Select(profileColumns...).
		From(tableProfile).
		Where(sq.Eq{"user_id": userID})
}

func deleteProfile(userID int64) sq.DeleteBuilder {
	return sq.Delete(tableProfile).Where(sq.Eq{"user_id": userID})
}
