package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/donaldgifford/carmatch/internal/metrics"
	"github.com/donaldgifford/carmatch/internal/store"
	domain "github.com/donaldgifford/carmatch/pkg/types"
)

// Account field limits.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

// UsersHandler handles registration, login, and profile endpoints.
type UsersHandler struct {
	store      store.Store
	bcryptCost int
}

// UsersHandlerOption configures the UsersHandler.
type UsersHandlerOption func(*UsersHandler)

// WithBcryptCost sets the bcrypt cost used when hashing passwords.
func WithBcryptCost(cost int) UsersHandlerOption {
	return func(h *UsersHandler) {
		h.bcryptCost = cost
	}
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(s store.Store, opts ...UsersHandlerOption) *UsersHandler {
	h := &UsersHandler{store: s, bcryptCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// --- Input/Output types ---

// CredentialsInput is the request body for register and login.
type CredentialsInput struct {
	Body struct {
		Username string `json:"username" doc:"Account name (3-50 characters)" example:"alice"`
		Password string `json:"password" doc:"Password (6 characters to 72 bytes)" example:"hunter22"`
	}
}

// AuthOutput is the response for register and login.
type AuthOutput struct {
	Body struct {
		User  domain.User `json:"user"`
		Token string      `json:"token" doc:"Bearer token for authenticated endpoints"`
	}
}

// ProfileInput is the input for reading the signed-in user's profile.
type ProfileInput struct {
	BearerAuth
}

// UpdateProfileInput is the input for changing username and/or password.
type UpdateProfileInput struct {
	BearerAuth
	Body struct {
		Username *string `json:"username,omitempty" doc:"New account name"`
		Password *string `json:"password,omitempty" doc:"New password"`
	}
}

// ProfileOutput is the response for profile endpoints.
type ProfileOutput struct {
	Body domain.User
}

// --- Handlers ---

// Register creates an account and returns it with a bearer token.
func (h *UsersHandler) Register(
	ctx context.Context,
	input *CredentialsInput,
) (*AuthOutput, error) {
	username := strings.TrimSpace(input.Body.Username)
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(input.Body.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Body.Password), h.bcryptCost)
	if err != nil {
		return nil, huma.Error500InternalServerError("hashing password failed")
	}

	u := &domain.User{Username: username, PasswordHash: string(hash)}
	if err := h.store.CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, huma.Error409Conflict("username already taken")
		}
		return nil, huma.Error500InternalServerError("creating user failed: " + err.Error())
	}

	metrics.UserRegistrationsTotal.Inc()

	resp := &AuthOutput{}
	resp.Body.User = *u
	resp.Body.Token = u.ID
	return resp, nil
}

// Login checks credentials and returns the user with a bearer token.
func (h *UsersHandler) Login(
	ctx context.Context,
	input *CredentialsInput,
) (*AuthOutput, error) {
	u, err := h.store.GetUserByUsername(ctx, strings.TrimSpace(input.Body.Username))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error500InternalServerError("fetching user failed: " + err.Error())
	}

	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Body.Password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, huma.Error401Unauthorized("invalid username or password")
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	resp := &AuthOutput{}
	resp.Body.User = *u
	resp.Body.Token = u.ID
	return resp, nil
}

// GetProfile returns the signed-in user.
func (h *UsersHandler) GetProfile(
	ctx context.Context,
	input *ProfileInput,
) (*ProfileOutput, error) {
	u, err := h.currentUser(ctx, &input.BearerAuth)
	if err != nil {
		return nil, err
	}
	return &ProfileOutput{Body: *u}, nil
}

// UpdateProfile changes the signed-in user's username and/or password.
func (h *UsersHandler) UpdateProfile(
	ctx context.Context,
	input *UpdateProfileInput,
) (*ProfileOutput, error) {
	u, err := h.currentUser(ctx, &input.BearerAuth)
	if err != nil {
		return nil, err
	}

	if input.Body.Username == nil && input.Body.Password == nil {
		return nil, huma.Error400BadRequest("nothing to update: provide username and/or password")
	}

	if input.Body.Username != nil {
		username := strings.TrimSpace(*input.Body.Username)
		if err := validateUsername(username); err != nil {
			return nil, err
		}
		u.Username = username
	}

	if input.Body.Password != nil {
		if err := validatePassword(*input.Body.Password); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Body.Password), h.bcryptCost)
		if err != nil {
			return nil, huma.Error500InternalServerError("hashing password failed")
		}
		u.PasswordHash = string(hash)
	}

	if err := h.store.UpdateUser(ctx, u); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return nil, huma.Error409Conflict("username already taken")
		case errors.Is(err, store.ErrNotFound):
			return nil, huma.Error401Unauthorized("unknown user")
		default:
			return nil, huma.Error500InternalServerError("updating user failed: " + err.Error())
		}
	}

	return &ProfileOutput{Body: *u}, nil
}

func (h *UsersHandler) currentUser(ctx context.Context, auth *BearerAuth) (*domain.User, error) {
	id, err := auth.UserID()
	if err != nil {
		return nil, err
	}

	u, err := h.store.GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error401Unauthorized("unknown user")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching user failed: " + err.Error())
	}
	return u, nil
}

func validateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < MinUsernameLength || n > MaxUsernameLength {
		return huma.Error400BadRequest("username must be between 3 and 50 characters")
	}
	return nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return huma.Error400BadRequest("password must be at least 6 characters")
	}
	if len(password) > MaxPasswordBytes {
		return huma.Error400BadRequest("password must be at most 72 bytes")
	}
	return nil
}

// RegisterUserRoutes registers account endpoints with the Huma API.
func RegisterUserRoutes(api huma.API, h *UsersHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/api/v1/auth/register",
		Summary:       "Register an account",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusConflict},
	}, h.Register)

	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/login",
		Summary:     "Log in",
		Description: "Checks credentials and returns the user with a bearer token.",
		Tags:        []string{"auth"},
		Errors:      []int{http.StatusUnauthorized},
	}, h.Login)

	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/api/v1/auth/profile",
		Summary:     "Get the signed-in user",
		Tags:        []string{"auth"},
		Security:    bearerSecurity,
		Errors:      []int{http.StatusUnauthorized},
	}, h.GetProfile)

	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPut,
		Path:        "/api/v1/auth/profile",
		Summary:     "Update the signed-in user",
		Description: "Changes the username and/or password of the signed-in user.",
		Tags:        []string{"auth"},
		Security:    bearerSecurity,
		Errors:      []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusConflict},
	}, h.UpdateProfile)
}
