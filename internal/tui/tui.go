package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/internal/service"
	"github.com/MKhiriev/go-quest-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the two Bubble Tea programs of the client: the login flow and
// the logged-in main loop.
type TUI struct {
	buildInfo     models.AppBuildInfo
	notifications *Notifications
	logger        *logger.Logger
}

func New(buildInfo models.AppBuildInfo, notifications *Notifications, log *logger.Logger) *TUI {
	return &TUI{buildInfo: buildInfo, notifications: notifications, logger: log}
}

// LoginFlow runs the menu, login, registration and password reset pages
// until a session is obtained. Returns [ErrUserQuit] when the user leaves.
func (t *TUI) LoginFlow(ctx context.Context, auth service.ClientAuthService) (models.Session, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, auth),
		pageRegister: NewRegisterModel(ctx, auth),
		pageReset:    NewResetPasswordModel(ctx, auth),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.session.Valid() {
		return models.Session{}, ErrUserQuit
	}

	t.logger.Info().Int64("user_id", result.session.UserID).Msg("logged in")
	return result.session, nil
}

// MainLoop shows the screens of session until the user quits. logout is
// set when the user asked to leave the account.
func (t *TUI) MainLoop(ctx context.Context, session models.Session, services *service.ClientServices, screens *service.Screens, interval time.Duration) (logout bool, err error) {
	var notices <-chan models.Notification
	if t.notifications != nil {
		notices = t.notifications.C()
	}

	model := newMainLoopModel(ctx, services, screens, session, interval, notices)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
