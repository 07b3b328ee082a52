package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"leasedesk/pkg/types"
)

type notificationsQuery struct {
	UserID string `form:"userId"`
	ID     string `form:"id"`
}

func (s *Service) handleGetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var query notificationsQuery
	if err := decoder.Decode(&query, r.URL.Query()); err != nil {
		s.logger.WithError(err).Error("failed to decode notifications query")
		s.respondError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	if query.UserID == "" {
		s.respondError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	user, err := s.users.UserByKey(ctx, query.UserID)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			s.respondError(w, http.StatusNotFound, "User not found")
			return
		}
		s.logger.WithError(err).Error("failed to look up user")
		s.respondError(w, http.StatusInternalServerError, "failed to fetch notifications")
		return
	}

	notifications, err := s.notifications.NotificationsForUser(ctx, user.ID)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch notifications")
		s.respondError(w, http.StatusInternalServerError, "failed to fetch notifications")
		return
	}

	expanded, err := s.expandParticipants(r, notifications)
	if err != nil {
		s.logger.WithError(err).Error("failed to expand notification participants")
		s.respondError(w, http.StatusInternalServerError, "failed to fetch notifications")
		return
	}

	s.respondJSON(w, http.StatusOK, expanded)
}

// expandParticipants attaches the sender and receiver user rows to each
// notification, the shape the web client renders directly.
func (s *Service) expandParticipants(r *http.Request, notifications []*types.Notification) ([]*types.UserNotification, error) {
	ids := make([]string, 0, len(notifications)*2)
	seen := make(map[string]bool)
	for _, n := range notifications {
		for _, id := range []string{n.SenderID, n.ReceiverID} {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	users, err := s.users.UsersByIDs(r.Context(), ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*types.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	out := make([]*types.UserNotification, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, &types.UserNotification{
			Notification: *n,
			Sender:       byID[n.SenderID],
			Receiver:     byID[n.ReceiverID],
		})
	}

	return out, nil
}

type createNotificationRequest struct {
	Sender           string `json:"sender"`
	Subject          string `json:"subject"`
	Message          string `json:"message"`
	NotificationType string `json:"notificationType"`
}

// handlePostNotifications creates a notification addressed to the admin
// user; the caller only chooses the sender. The sender lookup runs before
// the missing-field check, matching the behavior the web client relies on.
func (s *Service) handlePostNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sender, err := s.users.UserByKey(ctx, req.Sender)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			s.respondError(w, http.StatusNotFound, "Sender not found")
			return
		}
		s.logger.WithError(err).Error("failed to look up sender")
		s.respondError(w, http.StatusInternalServerError, "failed to create notification")
		return
	}

	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"sender", req.Sender},
		{"subject", req.Subject},
		{"message", req.Message},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("Missing fields: %s", strings.Join(missing, ", ")))
		return
	}

	admin, err := s.users.AdminUser(ctx)
	if err != nil {
		if errors.Is(err, types.ErrAdminNotFound) {
			s.respondError(w, http.StatusNotFound, "Admin user not found")
			return
		}
		s.logger.WithError(err).Error("failed to look up admin user")
		s.respondError(w, http.StatusInternalServerError, "failed to create notification")
		return
	}

	notification := &types.Notification{
		SenderID:   sender.ID,
		ReceiverID: admin.ID,
		Subject:    req.Subject,
		Message:    req.Message,
	}
	if req.NotificationType != "" {
		notification.NotificationType = &req.NotificationType
	}

	if err := s.notifications.Create(ctx, notification); err != nil {
		s.logger.WithError(err).Error("failed to create notification")
		s.respondError(w, http.StatusInternalServerError, "failed to create notification")
		return
	}

	s.respondJSON(w, http.StatusCreated, notification)
}

func (s *Service) handlePatchNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var query notificationsQuery
	if err := decoder.Decode(&query, r.URL.Query()); err != nil {
		s.logger.WithError(err).Error("failed to decode notifications query")
		s.respondError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	if query.ID == "" {
		s.respondError(w, http.StatusBadRequest, "Notification ID is required")
		return
	}

	notification, err := s.notifications.MarkRead(ctx, query.ID)
	if err != nil {
		s.logger.WithError(err).Error("failed to update notification")
		s.respondError(w, http.StatusInternalServerError, "Failed to update notification")
		return
	}

	s.respondJSON(w, http.StatusOK, notification)
}
