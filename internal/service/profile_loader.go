package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/internal/store"
	"github.com/MKhiriev/go-quest-client/models"
)

// ProfileState is the lifecycle of a [ProfileLoader]: [ProfileEmpty],
// [ProfileLoading], [ProfileReady] or [ProfileFailed].
type ProfileState interface {
	profileState()
}

type ProfileEmpty struct{}

// ProfileLoading carries the cached profile, if one exists, while the
// network fetch runs.
type ProfileLoading struct {
	Cached *models.Profile
}

type ProfileReady struct {
	Profile   models.Profile
	Freshness Freshness
}

type ProfileFailed struct {
	Err error
}

func (ProfileEmpty) profileState()   {}
func (ProfileLoading) profileState() {}
func (ProfileReady) profileState()   {}
func (ProfileFailed) profileState()  {}

// ProfileSnapshot is what subscribers of a [ProfileLoader] observe.
type ProfileSnapshot struct {
	State ProfileState
	// Refreshing is set during a silent background reload.
	Refreshing bool
	Notice     error
}

// Profile returns the profile to show, if any.
func (s ProfileSnapshot) Profile() (models.Profile, bool) {
	switch st := s.State.(type) {
	case ProfileReady:
		return st.Profile, true
	case ProfileLoading:
		if st.Cached != nil {
			return *st.Cached, true
		}
	}
	return models.Profile{}, false
}

// ProfileFetcher loads the profile from the server.
type ProfileFetcher func(ctx context.Context, session models.Session) (models.Profile, error)

type profileCommand struct {
	session models.Session
	silent  bool
	reply   chan bool
}

type profileResult struct {
	session models.Session
	silent  bool
	profile models.Profile
	err     error
}

// ProfileLoader is the single-item counterpart of [Synchronizer]: cached
// profile first, then the server, one fetch at a time.
type ProfileLoader struct {
	fetch  ProfileFetcher
	cache  store.ProfileRepository
	logger *logger.Logger
	now    func() time.Time

	ctx       context.Context
	commands  chan profileCommand
	results   chan profileResult
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
	snapshots *broadcaster[ProfileSnapshot]

	// owned by the run goroutine
	state      ProfileState
	fetching   bool
	refreshing bool
	notice     error
}

// NewProfileLoader starts a loader in [ProfileEmpty]. A nil cache makes it
// network-only.
func NewProfileLoader(fetch ProfileFetcher, cache store.ProfileRepository, log *logger.Logger) *ProfileLoader {
	log = log.ForComponent("profile_loader", models.KindProfile.String())

	l := &ProfileLoader{
		fetch:     fetch,
		cache:     cache,
		logger:    log,
		now:       time.Now,
		ctx:       log.WithContext(context.Background()),
		commands:  make(chan profileCommand),
		results:   make(chan profileResult),
		done:      make(chan struct{}),
		snapshots: newBroadcaster(ProfileSnapshot{State: ProfileEmpty{}}),
		state:     ProfileEmpty{},
	}

	l.wg.Add(1)
	go l.run()
	return l
}

// Load fetches the profile. A non-silent load shows the cached profile
// while fetching. A silent load keeps a ready profile on screen, sets
// Refreshing, and on failure leaves the state unchanged apart from the
// notice. Silent loads from any other state behave as non-silent ones.
func (l *ProfileLoader) Load(ctx context.Context, session models.Session, silent bool) bool {
	cmd := profileCommand{session: session, silent: silent, reply: make(chan bool, 1)}

	select {
	case l.commands <- cmd:
	case <-l.done:
		return false
	case <-ctx.Done():
		return false
	}

	select {
	case accepted := <-cmd.reply:
		return accepted
	case <-l.done:
		return false
	case <-ctx.Done():
		return false
	}
}

func (l *ProfileLoader) Snapshot() ProfileSnapshot {
	return l.snapshots.load()
}

func (l *ProfileLoader) Subscribe(ctx context.Context) <-chan ProfileSnapshot {
	return l.snapshots.subscribe(ctx)
}

func (l *ProfileLoader) Watch(ctx context.Context) <-chan struct{} {
	return watch(l.Subscribe(ctx))
}

// Close stops the loader; in-flight results are discarded.
func (l *ProfileLoader) Close() {
	l.closeOnce.Do(func() {
		close(l.done)
		l.wg.Wait()
		l.snapshots.close()
	})
}

func (l *ProfileLoader) run() {
	defer l.wg.Done()

	for {
		select {
		case <-l.done:
			return
		case cmd := <-l.commands:
			cmd.reply <- l.handle(cmd)
		case res := <-l.results:
			l.apply(res)
		}
	}
}

func (l *ProfileLoader) handle(cmd profileCommand) bool {
	if !cmd.session.Valid() || l.fetching {
		l.logger.Debug().
			Bool("fetching", l.fetching).
			Bool("silent", cmd.silent).
			Msg("profile load rejected")
		return false
	}

	_, ready := l.state.(ProfileReady)
	silent := cmd.silent && ready

	l.notice = nil
	if silent {
		l.refreshing = true
	} else {
		l.state = ProfileLoading{Cached: l.readCache(cmd.session.UserID)}
	}

	l.fetching = true
	l.publish()

	go func() {
		res := profileResult{session: cmd.session, silent: silent}
		res.profile, res.err = l.fetch(l.ctx, cmd.session)

		select {
		case l.results <- res:
		case <-l.done:
		}
	}()

	return true
}

func (l *ProfileLoader) readCache(userID int64) *models.Profile {
	if l.cache == nil {
		return nil
	}

	p, err := l.cache.GetProfile(l.ctx, userID)
	if errors.Is(err, store.ErrProfileNotFound) {
		return nil
	}
	if err != nil {
		l.logger.Warn().Err(err).
			Str("func", "ProfileLoader.readCache").
			Int64("user_id", userID).
			Msg("cache read failed, continuing with network only")
		l.notice = err
		return nil
	}
	return &p
}

func (l *ProfileLoader) apply(res profileResult) {
	l.fetching = false
	l.refreshing = false
	defer l.publish()

	if res.err != nil {
		l.logger.Error().Err(res.err).
			Str("func", "ProfileLoader.apply").
			Bool("silent", res.silent).
			Msg("profile fetch failed")

		l.notice = res.err
		if st, ok := l.state.(ProfileLoading); ok {
			if st.Cached != nil {
				l.state = ProfileReady{Profile: *st.Cached, Freshness: Stale}
			} else {
				l.state = ProfileFailed{Err: res.err}
				l.notice = nil
			}
		}
		return
	}

	profile := res.profile
	profile.ID = res.session.UserID
	profile.LastUpdated = l.now().UTC()

	if l.cache != nil {
		saved, err := l.cache.SaveProfile(l.ctx, res.session.UserID, res.profile)
		if err != nil {
			l.logger.Warn().Err(err).
				Str("func", "ProfileLoader.apply").
				Int64("user_id", res.session.UserID).
				Msg("failed to cache profile")
			l.notice = err
		} else {
			profile = saved
		}
	}

	l.state = ProfileReady{Profile: profile, Freshness: Fresh}
}

func (l *ProfileLoader) publish() {
	l.snapshots.publish(ProfileSnapshot{State: l.state, Refreshing: l.refreshing, Notice: l.notice})
}
