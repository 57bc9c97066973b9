package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-quest-client/internal/service"
	"github.com/MKhiriev/go-quest-client/models"
)

// listState is the kind-independent rendering input of one collection.
type listState struct {
	rows    []string
	hasView bool
	loading bool
	more    bool
	syncing bool
	hasMore bool
	total   int
	stale   bool
	failed  error
	notice  error
}

func collectionState[T any](snap service.Snapshot[T], format func(T) string) listState {
	st := listState{syncing: snap.Syncing, notice: snap.Notice}

	switch s := snap.State.(type) {
	case service.Loading[T]:
		st.loading = true
	case service.LoadingMore[T]:
		st.more = true
	case service.Ready[T]:
		st.stale = s.Freshness == service.Stale
	case service.Failed[T]:
		st.failed = s.Err
	}

	if view, ok := snap.CurrentView(); ok {
		st.hasView = true
		st.hasMore = view.HasMore
		st.total = view.Total
		st.rows = make([]string, 0, len(view.Items))
		for _, item := range view.Items {
			st.rows = append(st.rows, format(item))
		}
	}
	return st
}

func (st listState) render(cursor int) string {
	var b strings.Builder

	switch {
	case st.loading:
		b.WriteString("Загрузка...\n")
	case st.failed != nil && len(st.rows) == 0:
		b.WriteString(errorStyle.Render("Ошибка: " + humanizeError(st.failed)))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("r: повторить"))
		b.WriteString("\n")
	case len(st.rows) == 0:
		b.WriteString("Записей нет\n")
	}

	for i, row := range st.rows {
		marker := " "
		if i == cursor {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s %-3d│ %s\n", marker, i+1, row)
	}

	if st.hasView && len(st.rows) > 0 {
		b.WriteString("\n")
		line := fmt.Sprintf("Показано %d из %d", len(st.rows), max(st.total, len(st.rows)))
		if st.stale {
			line += "  " + staleStyle.Render("(сохранённые данные)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if st.more {
		b.WriteString(helpStyle.Render("загрузка следующей страницы..."))
		b.WriteString("\n")
	}
	if st.notice != nil {
		b.WriteString(noticeStyle.Render(service.NoticeMessage(st.notice, st.hasView && len(st.rows) > 0)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// nearEnd reports whether cursor is close enough to the last row to fetch
// the next page.
func (st listState) nearEnd(cursor int) bool {
	const threshold = 3
	return st.hasMore && !st.more && len(st.rows) > 0 && cursor >= len(st.rows)-threshold
}

func kindTitle(kind models.ResourceKind) string {
	switch kind {
	case models.KindQuests:
		return "Мои квесты"
	case models.KindAchievements:
		return "Достижения"
	case models.KindCollectibles:
		return "Коллекция"
	case models.KindAvailableQuests:
		return "Доступные квесты"
	case models.KindLeaderboard:
		return "Рейтинг"
	default:
		return kind.String()
	}
}

func formatQuest(q models.Quest) string {
	return fmt.Sprintf("%s │ %s │ %d/%d │ ★%d",
		padRight(fitText(q.Title, 28), 28),
		padRight(fitText(valueOrDash(q.UserStatus), 12), 12),
		q.Progress, q.TotalSteps, q.RewardStars,
	)
}

func formatAvailableQuest(q models.AvailableQuest) string {
	accepted := " "
	if q.IsAccepted {
		accepted = "✓"
	}
	return fmt.Sprintf("%s %s │ %s │ ★%d",
		accepted,
		padRight(fitText(q.Title, 28), 28),
		padRight(fitText(valueOrDash(q.DistrictName), 16), 16),
		q.RewardStars,
	)
}

func formatAchievement(a models.Achievement) string {
	done := " "
	if a.IsCompleted {
		done = "✓"
	}
	return fmt.Sprintf("%s %s │ %d очк.", done, padRight(fitText(a.Name, 32), 32), a.Points)
}

func formatCollectible(c models.Collectible) string {
	return fmt.Sprintf("%s │ %s", padRight(fitText(c.Name, 24), 24), fitText(c.Rarity, 12))
}

func formatLeader(e models.LeaderboardEntry) string {
	name := e.Name
	if e.Nickname != "" {
		name += " (" + e.Nickname + ")"
	}
	return fmt.Sprintf("#%-4d %s │ ★%d", e.Rank, padRight(fitText(name, 32), 32), e.Stars)
}

func formatProfile(snap service.ProfileSnapshot) string {
	p, ok := snap.Profile()
	if !ok {
		if failed, isFailed := snap.State.(service.ProfileFailed); isFailed {
			return errorStyle.Render("Профиль: " + humanizeError(failed.Err))
		}
		return "Профиль: загрузка..."
	}

	name := p.UserName
	if name == "" {
		name = p.Email
	}
	if p.UserNickname != "" {
		name += " @" + p.UserNickname
	}
	line := fmt.Sprintf("%s │ уровень %d │ ★%d / %d", name, p.Level, p.Stars, p.NextLevelStars)

	if ready, isReady := snap.State.(service.ProfileReady); isReady && ready.Freshness == service.Stale {
		line += "  " + staleStyle.Render("(сохранённые данные)")
	}
	if snap.Notice != nil {
		line += "\n" + noticeStyle.Render(service.NoticeMessage(snap.Notice, true))
	}
	return line
}
