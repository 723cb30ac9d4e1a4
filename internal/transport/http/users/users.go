package users

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/user"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/services/usersvc"
	"github.com/GuruMohith24/e-commerce-backend/internal/transport/http/converters"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// service is an interface for the service layer.
type service interface {
	CreateUser(ctx context.Context, model usersvc.CreateUserModel) (*user.User, error)
	GetUser(ctx context.Context, id int64) (*user.User, error)
	ListUsers(ctx context.Context) ([]user.User, error)
	UpdateUser(ctx context.Context, id int64, model usersvc.CreateUserModel) (*user.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// userRequest represents a create or update user request.
type userRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Validate validates the user request.
func (r *userRequest) Validate() error {
	return validator.New().Struct(r)
}

func (r *userRequest) toModel() usersvc.CreateUserModel {
	return usersvc.CreateUserModel{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

// Create handles the create user request.
func Create(w http.ResponseWriter, r *http.Request, service service) {
	req := userRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for create user", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating request body for create user", "error", err)

		return
	}

	created, err := service.CreateUser(r.Context(), req.toModel())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error creating user", "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(converters.UserToResponse(*created)); err != nil {
		slog.Error("Error sending response for create user", "error", err)
	}
}

// Get handles the get user request.
func Get(w http.ResponseWriter, r *http.Request, service service) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	u, err := service.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(converters.UserToResponse(*u)); err != nil {
		slog.Error("Error sending response for get user", "error", err)
	}
}

// List handles the list users request.
func List(w http.ResponseWriter, r *http.Request, service service) {
	users, err := service.ListUsers(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error listing users", "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(converters.UsersToResponse(users)); err != nil {
		slog.Error("Error sending response for list users", "error", err)
	}
}

// Update handles the update user request.
func Update(w http.ResponseWriter, r *http.Request, service service) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	req := userRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for update user", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating request body for update user", "error", err)

		return
	}

	updated, err := service.UpdateUser(r.Context(), id, req.toModel())
	if err != nil {
		respondError(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(converters.UserToResponse(*updated)); err != nil {
		slog.Error("Error sending response for update user", "error", err)
	}
}

// Delete handles the delete user request.
func Delete(w http.ResponseWriter, r *http.Request, service service) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := service.DeleteUser(r.Context(), id); err != nil {
		respondError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)

		return 0, false
	}

	return id, true
}

func respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, user.ErrUserNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
	} else {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
	slog.Error("Error handling user request", "error", err)
}
