package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"leasedesk/internal/utils"
	"leasedesk/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const notificationTableName = "leasedesk.notifications"

var notificationColumns = utils.StructTagValues(types.Notification{})

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// NotificationsForUser returns every notification the user sent or
// received, newest first.
func (r *NotificationRepository) NotificationsForUser(ctx context.Context, userID string) ([]*types.Notification, error) {
	query, args, err := psql().
		Select(notificationColumns...).
		From(notificationTableName).
		Where(sq.Or{sq.Eq{"sender_id": userID}, sq.Eq{"receiver_id": userID}}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate notifications-for-user query: %w", err)
	}

	notifications := make([]*types.Notification, 0)
	err = pgxscan.Select(ctx, r.pool, &notifications, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	return notifications, nil
}

func (r *NotificationRepository) Create(ctx context.Context, notification *types.Notification) error {
	if notification.ID == "" {
		notification.ID = utils.NanoID()
	}
	if notification.Status == "" {
		notification.Status = types.NotificationStatusDefault
	}
	notification.CreatedAt = time.Now()

	query, args, err := psql().
		Insert(notificationTableName).
		SetMap(utils.StructToMap(notification)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create notification query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// MarkRead flips a notification's status to READ.
func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID string) (*types.Notification, error) {
	query, args, err := psql().
		Update(notificationTableName).
		Set("status", types.NotificationStatusRead).
		Where(sq.Eq{"id": notificationID}).
		Suffix("RETURNING " + strings.Join(notificationColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate mark read query: %w", err)
	}

	var notification types.Notification
	err = pgxscan.Get(ctx, r.pool, &notification, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}

	return &notification, nil
}
