package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/reviewhub/accounts/pkg/account"
	"github.com/reviewhub/accounts/pkg/response"
	"github.com/reviewhub/accounts/pkg/storage"
)

// Handle handles HTTP requests for account management
type Handle struct {
	accountService *account.AccountService
}

// NewHandle creates a new account handler
func NewHandle(accountService *account.AccountService) *Handle {
	return &Handle{
		accountService: accountService,
	}
}

// RegisterRoutes registers the account routes
func (h *Handle) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.GetAllUsers)
		r.Post("/", h.CreateUser)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/profile", h.GetProfile)
			r.Put("/profile", h.UpdateProfile)
			r.Put("/password", h.UpdatePassword)
			r.Put("/review-alert", h.ChangeReviewAlert)
		})
	})
}

// UpdatePasswordRequest is the body for PUT /users/{id}/password
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password,omitempty"`
	NewPassword     string `json:"new_password"`
}

// UploadedAssetRequest describes an asset the caller already uploaded
type UploadedAssetRequest struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// UpdateProfileRequest is the body for PUT /users/{id}/profile. The photo
// upload happens before this call; only its result is carried here.
type UpdateProfileRequest struct {
	FullName string                `json:"full_name,omitempty"`
	Bio      string                `json:"bio,omitempty"`
	Photo    *UploadedAssetRequest `json:"photo,omitempty"`
}

// CreateUserRequest is the body for POST /users
type CreateUserRequest struct {
	Email       string `json:"email"`
	FullName    string `json:"full_name,omitempty"`
	Password    string `json:"password,omitempty"`
	FederatedID string `json:"federated_id,omitempty"`
	Role        string `json:"role,omitempty"`
}

func userID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	failure := response.FailureFromError(err)
	render.Status(r, failure.StatusCode)
	render.JSON(w, r, failure)
}

// GetAllUsers handles the request to list all users
func (h *Handle) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.accountService.GetAllUsers(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

// GetProfile handles the request to get a user's profile
func (h *Handle) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	resp, err := h.accountService.GetProfile(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

// UpdateProfile handles the request to update a user's profile
func (h *Handle) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	var request UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	params := account.UpdateProfileParams{}
	if err := copier.Copy(&params, &request); err != nil {
		slog.Error("Failed to copy profile params", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var asset *storage.UploadedAsset
	if request.Photo != nil {
		asset = &storage.UploadedAsset{URL: request.Photo.URL, Key: request.Photo.Key}
	}

	resp, err := h.accountService.UpdateProfile(r.Context(), id, params, asset)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

// UpdatePassword handles the request to set or update a user's password
func (h *Handle) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	var request UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// New password presence is the DTO's job, not the credential policy's
	if request.NewPassword == "" {
		http.Error(w, "New password is required", http.StatusBadRequest)
		return
	}

	resp, err := h.accountService.UpdatePassword(r.Context(), id, account.UpdatePasswordParams{
		CurrentPassword: request.CurrentPassword,
		NewPassword:     request.NewPassword,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

// ChangeReviewAlert handles the request to toggle the review-alert preference
func (h *Handle) ChangeReviewAlert(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	resp, err := h.accountService.ChangeReviewAlert(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

// CreateUser handles the request to provision a new user
func (h *Handle) CreateUser(w http.ResponseWriter, r *http.Request) {
	var request CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	params := account.CreateUserParams{}
	if err := copier.Copy(&params, &request); err != nil {
		slog.Error("Failed to copy user params", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp, err := h.accountService.CreateUser(r.Context(), params, request.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}
