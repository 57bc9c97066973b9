package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-quest-client/internal/adapter"
	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/internal/store"
	"github.com/MKhiriev/go-quest-client/models"
)

// UserScreen is the profile screen: the profile plus the user's quests,
// achievements and collectibles, all backed by the local cache.
type UserScreen struct {
	*Coordinator

	Profile      *ProfileLoader
	Quests       *Synchronizer[models.Quest]
	Achievements *Synchronizer[models.Achievement]
	Collectibles *Synchronizer[models.Collectible]
}

// NewUserScreen wires the user screen. Quests are active by default.
func NewUserScreen(storages *store.ClientStorages, srv adapter.ServerAdapter, pageLimit int, log *logger.Logger) *UserScreen {
	s := &UserScreen{
		Profile:      NewProfileLoader(srv.FetchProfile, storages.Profile, log),
		Quests:       NewSynchronizer[models.Quest](models.KindQuests, srv.FetchQuests, storages.Quests, pageLimit, log),
		Achievements: NewSynchronizer[models.Achievement](models.KindAchievements, srv.FetchAchievements, storages.Achievements, pageLimit, log),
		Collectibles: NewSynchronizer[models.Collectible](models.KindCollectibles, srv.FetchCollectibles, storages.Collectibles, pageLimit, log),
	}
	s.Coordinator = NewCoordinator(s.Profile, log, s.Quests, s.Achievements, s.Collectibles)
	return s
}

// HomeScreen lists quests available to accept. It is not cached.
type HomeScreen struct {
	*Coordinator

	AvailableQuests *Synchronizer[models.AvailableQuest]
}

func NewHomeScreen(srv adapter.ServerAdapter, pageLimit int, log *logger.Logger) *HomeScreen {
	s := &HomeScreen{
		AvailableQuests: NewSynchronizer[models.AvailableQuest](models.KindAvailableQuests, srv.FetchAvailableQuests, nil, pageLimit, log),
	}
	s.Coordinator = NewCoordinator(nil, log, s.AvailableQuests)
	return s
}

// RatingScreen shows the leaderboard. It is not cached.
type RatingScreen struct {
	*Coordinator

	Leaderboard *Synchronizer[models.LeaderboardEntry]
}

func NewRatingScreen(srv adapter.ServerAdapter, pageLimit int, log *logger.Logger) *RatingScreen {
	s := &RatingScreen{
		Leaderboard: NewSynchronizer[models.LeaderboardEntry](models.KindLeaderboard, srv.FetchLeaderboard, nil, pageLimit, log),
	}
	s.Coordinator = NewCoordinator(nil, log, s.Leaderboard)
	return s
}

// ScreenID names one of the [Screens].
type ScreenID int

const (
	ScreenUser ScreenID = iota
	ScreenHome
	ScreenRating
)

// Screens holds every screen of a logged-in session. Only the visible
// screen is refreshed periodically.
type Screens struct {
	User   *UserScreen
	Home   *HomeScreen
	Rating *RatingScreen

	mu      sync.Mutex
	opened  map[ScreenID]bool
	visible ScreenID
	closed  bool
}

func NewScreens(storages *store.ClientStorages, srv adapter.ServerAdapter, pageLimit int, log *logger.Logger) *Screens {
	return &Screens{
		User:    NewUserScreen(storages, srv, pageLimit, log),
		Home:    NewHomeScreen(srv, pageLimit, log),
		Rating:  NewRatingScreen(srv, pageLimit, log),
		opened:  make(map[ScreenID]bool),
		visible: ScreenUser,
	}
}

// Invalidator reports writes to all screens.
func (s *Screens) Invalidator() Invalidator {
	return Invalidators{s.User, s.Home, s.Rating}
}

// Coordinator returns the coordinator of id, or nil for an unknown id.
func (s *Screens) Coordinator(id ScreenID) *Coordinator {
	switch id {
	case ScreenUser:
		return s.User.Coordinator
	case ScreenHome:
		return s.Home.Coordinator
	case ScreenRating:
		return s.Rating.Coordinator
	}
	return nil
}

func (s *Screens) Visible() ScreenID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Show makes id the visible screen. It is opened on first show and then
// refreshed every interval; the other screens stop ticking.
func (s *Screens) Show(ctx context.Context, session models.Session, id ScreenID, interval time.Duration) error {
	target := s.Coordinator(id)
	if target == nil {
		return fmt.Errorf("%w: screen %d", ErrUnknownResource, id)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	first := !s.opened[id]
	s.opened[id] = true
	s.visible = id
	s.mu.Unlock()

	for _, other := range []ScreenID{ScreenUser, ScreenHome, ScreenRating} {
		if other != id {
			s.Coordinator(other).Stop()
		}
	}

	if first {
		target.Open(ctx, session)
	}
	target.Start(ctx, session, interval)
	return nil
}

// Changes signals a new snapshot on any screen.
func (s *Screens) Changes(ctx context.Context) <-chan struct{} {
	return mergeSignals(
		s.User.Changes(ctx),
		s.Home.Changes(ctx),
		s.Rating.Changes(ctx),
	)
}

func (s *Screens) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	for _, id := range []ScreenID{ScreenUser, ScreenHome, ScreenRating} {
		s.Coordinator(id).Close()
	}
}
