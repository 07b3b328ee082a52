package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"leasedesk/pkg/types"
)

type usersQuery struct {
	UserRole string `form:"userRole"`
}

func (s *Service) handleGetUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var query usersQuery
	if err := decoder.Decode(&query, r.URL.Query()); err != nil {
		s.logger.WithError(err).Error("failed to decode users query")
		s.respondError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	if query.UserRole == "tenant" {
		tenants, err := s.users.UsersByRole(ctx, string(types.UserRoleTenant))
		if err != nil {
			s.logger.WithError(err).Error("failed to fetch tenants")
			s.respondError(w, http.StatusInternalServerError, "failed to fetch users")
			return
		}
		s.respondJSON(w, http.StatusOK, tenants)
		return
	}

	users, err := s.users.Users(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch users")
		s.respondError(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}

	s.respondJSON(w, http.StatusOK, users)
}

type createUserRequest struct {
	AppwriteID      string `json:"appwriteId"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	ApartmentNumber string `json:"apartmentNumber"`
	PhoneNumber     string `json:"phoneNumber"`
}

func (req createUserRequest) missingFields() []string {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"firstName", req.FirstName},
		{"lastName", req.LastName},
		{"email", req.Email},
		{"apartmentNumber", req.ApartmentNumber},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

// handlePostUsers registers a tenant, or resolves an already-registered
// one by email. When the existing row has no external auth id yet and the
// request carries one, it is backfilled before the existing id is returned.
func (s *Service) handlePostUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if missing := req.missingFields(); len(missing) > 0 {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("Missing fields: %s", strings.Join(missing, ", ")))
		return
	}

	existing, err := s.users.UserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, types.ErrUserNotFound) {
		s.logger.WithError(err).Error("failed to look up user by email")
		s.respondError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	if existing != nil {
		if req.AppwriteID != "" && existing.AppwriteID == nil {
			if err := s.users.SetAppwriteID(ctx, existing.ID, req.AppwriteID); err != nil {
				s.logger.WithError(err).Error("failed to backfill appwrite id")
				s.respondError(w, http.StatusInternalServerError, "failed to create user")
				return
			}
		}
		s.respondJSON(w, http.StatusOK, existing.ID)
		return
	}

	user := &types.User{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		UserRole:        string(types.UserRoleTenant),
		ApartmentNumber: &req.ApartmentNumber,
	}
	if req.AppwriteID != "" {
		user.AppwriteID = &req.AppwriteID
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = &req.PhoneNumber
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.WithError(err).Error("failed to create user")
		s.respondError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	s.respondJSON(w, http.StatusCreated, user.ID)
}
