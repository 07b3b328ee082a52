package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"leasedesk/internal/documenso"
	"leasedesk/internal/lease"
	"leasedesk/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

// UserStore is the slice of the user repository the handlers consume.
type UserStore interface {
	UserByKey(ctx context.Context, key string) (*types.User, error)
	UserByEmail(ctx context.Context, email string) (*types.User, error)
	Users(ctx context.Context) ([]*types.User, error)
	UsersByRole(ctx context.Context, role string) ([]*types.User, error)
	UsersByIDs(ctx context.Context, userIDs []string) ([]*types.User, error)
	AdminUser(ctx context.Context) (*types.User, error)
	Create(ctx context.Context, user *types.User) error
	SetAppwriteID(ctx context.Context, userID, appwriteID string) error
}

type NotificationStore interface {
	NotificationsForUser(ctx context.Context, userID string) ([]*types.Notification, error)
	Create(ctx context.Context, notification *types.Notification) error
	MarkRead(ctx context.Context, notificationID string) (*types.Notification, error)
}

// LeaseDispatcher runs the generate-and-send pipeline.
type LeaseDispatcher interface {
	Run(ctx context.Context, req types.LeaseRequest) (*lease.Result, error)
}

type Service struct {
	logger *logrus.Logger
	config *types.Config

	users         UserStore
	notifications NotificationStore
	provider      documenso.Provider
	pipeline      LeaseDispatcher

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	users UserStore,
	notifications NotificationStore,
	provider documenso.Provider,
	pipeline LeaseDispatcher,
) *Service {
	mux := flow.New()

	s := &Service{
		logger: logger,
		config: config,

		users:         users,
		notifications: notifications,
		provider:      provider,
		pipeline:      pipeline,

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/users", s.handleGetUsers, http.MethodGet)
	r.HandleFunc("/users", s.handlePostUsers, http.MethodPost)

	r.HandleFunc("/notifications", s.handleGetNotifications, http.MethodGet)
	r.HandleFunc("/notifications", s.handlePostNotifications, http.MethodPost)
	r.HandleFunc("/notifications", s.handlePatchNotifications, http.MethodPatch)

	r.HandleFunc("/document-status", s.handleDocumentStatus, http.MethodGet)
	r.HandleFunc("/generate-and-send", s.handleGenerateAndSend, http.MethodPost)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)
}
