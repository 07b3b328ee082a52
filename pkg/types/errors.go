package types

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrAdminNotFound        = errors.New("admin user not found")
	ErrPropertyNotFound     = errors.New("property not found")
	ErrNotificationNotFound = errors.New("notification not found")
)
