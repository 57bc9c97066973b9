package service

import (
	"context"

	"github.com/MKhiriev/go-quest-client/models"
)

// Collection is the kind-agnostic face of a [Synchronizer] used by the
// [Coordinator].
type Collection interface {
	Kind() models.ResourceKind
	LoadInitial(ctx context.Context, session models.Session) bool
	LoadMore(ctx context.Context, session models.Session) bool
	Refresh(ctx context.Context, session models.Session) bool
	// NeedsLoad reports whether the collection has nothing to refresh and
	// must be loaded from scratch.
	NeedsLoad() bool
	Watch(ctx context.Context) <-chan struct{}
	Close()
}

// Invalidator refreshes cached kinds after a write made them outdated.
type Invalidator interface {
	Invalidate(ctx context.Context, session models.Session, kinds ...models.ResourceKind)
}

// Invalidators fans an invalidation out to every screen that is open.
type Invalidators []Invalidator

func (is Invalidators) Invalidate(ctx context.Context, session models.Session, kinds ...models.ResourceKind) {
	for _, i := range is {
		if i != nil {
			i.Invalidate(ctx, session, kinds...)
		}
	}
}

// Notifier shows a message outside the main view, e.g. a desktop
// notification or a status line.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification) error
}

// ClientAuthService defines the client-side contract for registration,
// login and session persistence. Successful Login and RegisterConfirm store
// the session in the secret store.
type ClientAuthService interface {
	// Login authenticates with email and password and stores the session.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// RegisterStart asks the server to send a verification code to
	// creds.Email. Returns the server message.
	RegisterStart(ctx context.Context, creds models.Credentials) (string, error)

	// RegisterConfirm checks the code and stores the new session.
	RegisterConfirm(ctx context.Context, creds models.Credentials) (models.Session, error)

	// ForgotPassword and ResetPassword run the two-step password reset.
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, creds models.Credentials) (string, error)

	// RestoreSession returns the stored session or [ErrNoSession].
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout clears the stored session and every cached row of the user.
	Logout(ctx context.Context, session models.Session) error
}

// ClientQuestService covers quest actions that are not part of the
// paginated collections. Successful writes invalidate the affected kinds.
type ClientQuestService interface {
	Preview(ctx context.Context, session models.Session, questID int64) (models.QuestPreview, error)
	Step(ctx context.Context, session models.Session, questID int64, stepNumber int) (models.QuestStep, error)
	Accept(ctx context.Context, session models.Session, questID int64) (string, error)
	SubmitStep(ctx context.Context, session models.Session, questID int64, stepNumber int, answer string) (models.SubmitResult, error)
}

// ClientProfileService changes account data. Successful writes invalidate
// the profile.
type ClientProfileService interface {
	UpdateProfile(ctx context.Context, session models.Session, userName, userNickname *string) (string, error)
	UpdatePassword(ctx context.Context, session models.Session, currentPassword, newPassword string) (string, error)
	UpdateAvatar(ctx context.Context, session models.Session, avatarBase64 string) (string, error)
}
