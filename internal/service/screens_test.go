package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/internal/mock"
	"github.com/MKhiriev/go-quest-client/models"
)

func TestScreens_ShowOpensOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	srv := mock.NewMockServerAdapter(ctrl)
	screens := NewScreens(newTestStorages(t), srv, 10, logger.Nop())
	defer screens.Close()

	available := []models.AvailableQuest{{ID: 1, Title: "Кошачий двор"}}
	srv.EXPECT().
		FetchAvailableQuests(gomock.Any(), testSession, 1, 10).
		Return(models.Page[models.AvailableQuest]{Items: available, Total: 1}, nil).
		Times(1)

	require.NoError(t, screens.Show(ctx, testSession, ScreenHome, time.Hour))
	assert.Equal(t, ScreenHome, screens.Visible())

	snap := waitSnapshot(t, screens.Home.AvailableQuests, isReady[models.AvailableQuest](Fresh))
	assert.Equal(t, available, readyView(t, snap).View.Items)

	// повторный показ не перезагружает экран
	require.NoError(t, screens.Show(ctx, testSession, ScreenHome, time.Hour))
	assert.Equal(t, models.KindAvailableQuests, screens.Coordinator(ScreenHome).Active())
}

func TestScreens_UnknownScreen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	screens := NewScreens(newTestStorages(t), mock.NewMockServerAdapter(ctrl), 10, logger.Nop())
	defer screens.Close()

	err := screens.Show(context.Background(), testSession, ScreenID(42), time.Hour)
	assert.ErrorIs(t, err, ErrUnknownResource)
	assert.Nil(t, screens.Coordinator(ScreenID(42)))
	assert.Equal(t, ScreenUser, screens.Visible())
	assert.Len(t, screens.Invalidator(), 3)
}

func TestScreens_ShowAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	screens := NewScreens(newTestStorages(t), mock.NewMockServerAdapter(ctrl), 10, logger.Nop())
	screens.Close()

	err := screens.Show(context.Background(), testSession, ScreenHome, time.Hour)
	assert.ErrorIs(t, err, ErrClosed)
	assert.Equal(t, ScreenUser, screens.Visible())
}
