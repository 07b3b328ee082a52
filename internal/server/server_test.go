package server

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"

	"leasedesk/internal/documenso"
	"leasedesk/internal/lease"
	"leasedesk/pkg/types"

	"github.com/sirupsen/logrus"
)

type memUserStore struct {
	users       []*types.User
	backfilled  map[string]string
	adminAbsent bool
	fail        bool
}

func newMemUserStore(users ...*types.User) *memUserStore {
	return &memUserStore{users: users, backfilled: map[string]string{}}
}

func (m *memUserStore) UserByKey(_ context.Context, key string) (*types.User, error) {
	if m.fail {
		return nil, errors.New("store unavailable")
	}
	for _, u := range m.users {
		if u.ID == key {
			return u, nil
		}
		if u.AppwriteID != nil && *u.AppwriteID == key {
			return u, nil
		}
	}
	return nil, types.ErrUserNotFound
}

func (m *memUserStore) UserByEmail(_ context.Context, email string) (*types.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, types.ErrUserNotFound
}

func (m *memUserStore) Users(_ context.Context) ([]*types.User, error) {
	return m.users, nil
}

func (m *memUserStore) UsersByRole(_ context.Context, role string) ([]*types.User, error) {
	out := []*types.User{}
	for _, u := range m.users {
		if u.UserRole == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memUserStore) UsersByIDs(_ context.Context, ids []string) ([]*types.User, error) {
	out := []*types.User{}
	for _, u := range m.users {
		for _, id := range ids {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (m *memUserStore) AdminUser(_ context.Context) (*types.User, error) {
	if m.adminAbsent {
		return nil, types.ErrAdminNotFound
	}
	for _, u := range m.users {
		if u.UserRole == string(types.UserRoleAdmin) {
			return u, nil
		}
	}
	return nil, types.ErrAdminNotFound
}

func (m *memUserStore) Create(_ context.Context, user *types.User) error {
	if user.ID == "" {
		user.ID = "u-" + user.Email
	}
	m.users = append(m.users, user)
	return nil
}

func (m *memUserStore) SetAppwriteID(_ context.Context, userID, appwriteID string) error {
	for _, u := range m.users {
		if u.ID == userID {
			u.AppwriteID = &appwriteID
			m.backfilled[userID] = appwriteID
			return nil
		}
	}
	return types.ErrUserNotFound
}

type memNotificationStore struct {
	notifications []*types.Notification
	markReadErr   error
}

func (m *memNotificationStore) NotificationsForUser(_ context.Context, userID string) ([]*types.Notification, error) {
	out := []*types.Notification{}
	for _, n := range m.notifications {
		if n.SenderID == userID || n.ReceiverID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memNotificationStore) Create(_ context.Context, n *types.Notification) error {
	if n.ID == "" {
		n.ID = "n-1"
	}
	if n.Status == "" {
		n.Status = types.NotificationStatusDefault
	}
	m.notifications = append(m.notifications, n)
	return nil
}

func (m *memNotificationStore) MarkRead(_ context.Context, id string) (*types.Notification, error) {
	if m.markReadErr != nil {
		return nil, m.markReadErr
	}
	for _, n := range m.notifications {
		if n.ID == id {
			n.Status = types.NotificationStatusRead
			return n, nil
		}
	}
	return nil, types.ErrNotificationNotFound
}

type stubPipeline struct {
	result *lease.Result
	err    error
	calls  int
}

func (s *stubPipeline) Run(_ context.Context, _ types.LeaseRequest) (*lease.Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type testEnv struct {
	service       *Service
	users         *memUserStore
	notifications *memNotificationStore
	pipeline      *stubPipeline
}

func newTestEnv(users *memUserStore) *testEnv {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	notifications := &memNotificationStore{}
	pipeline := &stubPipeline{}

	service := New(
		&types.Config{ServerPort: 0, ReadTimeoutSec: 1, WriteTimeoutSec: 1},
		logger,
		users,
		notifications,
		documenso.NewMock(),
		pipeline,
	)

	return &testEnv{
		service:       service,
		users:         users,
		notifications: notifications,
		pipeline:      pipeline,
	}
}

func (e *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	e.service.server.Handler.ServeHTTP(rec, req)
	return rec
}

func appwritePtr(s string) *string { return &s }

func adminUser() *types.User {
	return &types.User{ID: "admin-1", FirstName: "Site", LastName: "Admin", Email: "admin@leasedesk.local", UserRole: string(types.UserRoleAdmin)}
}

func tenantUser() *types.User {
	return &types.User{ID: "tenant-1", AppwriteID: appwritePtr("aw-1"), FirstName: "Ava", LastName: "Williams", Email: "ava@example.com", UserRole: string(types.UserRoleTenant)}
}
