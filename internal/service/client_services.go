package service

import (
	"time"

	"github.com/MKhiriev/go-quest-client/internal/adapter"
	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/internal/store"
)

// ClientServices groups the request/response services used by the UI.
type ClientServices struct {
	AuthService     ClientAuthService
	QuestService    ClientQuestService
	ProfileService  ClientProfileService
	NotificationJob *NotificationJob
}

// NewClientServices wires the services. Writes made through the quest and
// profile services are reported to invalidator.
func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, invalidator Invalidator, notifier Notifier, notificationInterval time.Duration, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:     NewClientAuthService(localStore, serverAdapter, log),
		QuestService:    NewClientQuestService(serverAdapter, invalidator, log),
		ProfileService:  NewClientProfileService(serverAdapter, invalidator, log),
		NotificationJob: NewNotificationJob(serverAdapter, notifier, notificationInterval, log),
	}
}
