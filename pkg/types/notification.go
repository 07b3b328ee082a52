package types

import "time"

const (
	NotificationStatusDefault = "default"
	NotificationStatusRead    = "READ"
)

type Notification struct {
	ID               string    `db:"id" json:"id"`
	SenderID         string    `db:"sender_id" json:"senderId"`
	ReceiverID       string    `db:"receiver_id" json:"receiverId"`
	Subject          string    `db:"subject" json:"subject"`
	Message          string    `db:"message" json:"message"`
	NotificationType *string   `db:"notification_type" json:"notificationType"`
	Status           string    `db:"status" json:"status"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
}

// UserNotification is a notification with its sender and receiver rows
// expanded, the shape returned by GET /notifications.
type UserNotification struct {
	Notification
	Sender   *User `json:"sender"`
	Receiver *User `json:"receiver"`
}
