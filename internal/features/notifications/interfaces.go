package notifications

// NotificationListener is notified after a notification row is
// inserted. The realtime transport registers here to push updates to
// connected clients; delivery carries no ordering guarantee relative
// to the inserting request's own response.
type NotificationListener interface {
	OnNotificationCreated(notification *Notification)
}
