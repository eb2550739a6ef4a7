package worker

import (
	"github.com/spec-kit/training-marketplace/internal/service"
)

// StartNotificationWorker subscribes the notification service to lifecycle
// events. It must run before the first mutation is served.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
