package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"leasedesk/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNotificationsRequiresUserID(t *testing.T) {
	env := newTestEnv(newMemUserStore())

	rec := env.do(http.MethodGet, "/notifications", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User ID is required", body["error"])
}

func TestGetNotificationsUnknownUser(t *testing.T) {
	env := newTestEnv(newMemUserStore(tenantUser()))

	rec := env.do(http.MethodGet, "/notifications?userId=nobody", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User not found", body["error"])
}

func TestGetNotificationsResolvesAppwriteID(t *testing.T) {
	tenant := tenantUser()
	admin := adminUser()
	env := newTestEnv(newMemUserStore(tenant, admin))
	env.notifications.notifications = []*types.Notification{
		{ID: "n-1", SenderID: tenant.ID, ReceiverID: admin.ID, Subject: "Leaky faucet", Message: "Unit 4 sink", Status: types.NotificationStatusDefault},
	}

	// looked up by the external auth id, not the internal one
	rec := env.do(http.MethodGet, "/notifications?userId=aw-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []types.UserNotification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Leaky faucet", body[0].Subject)
	require.NotNil(t, body[0].Sender)
	assert.Equal(t, tenant.ID, body[0].Sender.ID)
	require.NotNil(t, body[0].Receiver)
	assert.Equal(t, admin.ID, body[0].Receiver.ID)
}

func TestPostNotificationsTargetsAdmin(t *testing.T) {
	tenant := tenantUser()
	env := newTestEnv(newMemUserStore(tenant, adminUser()))

	rec := env.do(http.MethodPost, "/notifications",
		`{"sender":"tenant-1","subject":"Rent","message":"Question about rent","notificationType":"billing"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, env.notifications.notifications, 1)
	created := env.notifications.notifications[0]
	assert.Equal(t, tenant.ID, created.SenderID)
	assert.Equal(t, "admin-1", created.ReceiverID)
	assert.Equal(t, types.NotificationStatusDefault, created.Status)
}

func TestPostNotificationsUnknownSender(t *testing.T) {
	env := newTestEnv(newMemUserStore(adminUser()))

	rec := env.do(http.MethodPost, "/notifications",
		`{"sender":"ghost","subject":"Hi","message":"There"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Sender not found", body["error"])
}

func TestPostNotificationsMissingFields(t *testing.T) {
	env := newTestEnv(newMemUserStore(tenantUser(), adminUser()))

	rec := env.do(http.MethodPost, "/notifications", `{"sender":"tenant-1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "subject")
	assert.Contains(t, body["error"], "message")
}

func TestPostNotificationsNoAdmin(t *testing.T) {
	users := newMemUserStore(tenantUser())
	env := newTestEnv(users)

	rec := env.do(http.MethodPost, "/notifications",
		`{"sender":"tenant-1","subject":"Hi","message":"There"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Admin user not found", body["error"])
}

func TestGetNotificationsStoreFault(t *testing.T) {
	users := newMemUserStore(tenantUser())
	users.fail = true
	env := newTestEnv(users)

	rec := env.do(http.MethodGet, "/notifications?userId=tenant-1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPatchNotificationsRequiresID(t *testing.T) {
	env := newTestEnv(newMemUserStore())

	rec := env.do(http.MethodPatch, "/notifications", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchNotificationsMarksRead(t *testing.T) {
	env := newTestEnv(newMemUserStore())
	env.notifications.notifications = []*types.Notification{
		{ID: "n-1", SenderID: "a", ReceiverID: "b", Status: types.NotificationStatusDefault},
	}

	rec := env.do(http.MethodPatch, "/notifications?id=n-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body types.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, types.NotificationStatusRead, body.Status)
}

func TestPatchNotificationsStoreFault(t *testing.T) {
	env := newTestEnv(newMemUserStore())
	env.notifications.markReadErr = errors.New("connection reset")

	rec := env.do(http.MethodPatch, "/notifications?id=n-1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
