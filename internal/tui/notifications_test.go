package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-quest-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifications_KeepsLatest(t *testing.T) {
	n := NewNotifications()
	ctx := context.Background()

	require.NoError(t, n.Notify(ctx, models.Notification{Message: "first"}))
	require.NoError(t, n.Notify(ctx, models.Notification{Message: "second"}))

	got := <-n.C()
	assert.Equal(t, "second", got.Message)

	select {
	case extra := <-n.C():
		t.Fatalf("unexpected notification %q", extra.Message)
	default:
	}
}
