package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/carmatch/internal/store"
	domain "github.com/donaldgifford/carmatch/pkg/types"
)

// FavoritesHandler handles the signed-in user's saved cars.
type FavoritesHandler struct {
	store store.Store
}

// NewFavoritesHandler creates a new FavoritesHandler.
func NewFavoritesHandler(s store.Store) *FavoritesHandler {
	return &FavoritesHandler{store: s}
}

// --- Input/Output types ---

// ListFavoritesInput is the input for listing favorites.
type ListFavoritesInput struct {
	BearerAuth
}

// ListFavoritesOutput is the response for listing favorites.
type ListFavoritesOutput struct {
	Body []domain.FavoriteCar
}

// AddFavoriteInput is the input for saving a car.
type AddFavoriteInput struct {
	BearerAuth
	Body struct {
		CarID int64 `json:"car_id" doc:"Car to save" minimum:"1" example:"42"`
	}
}

// AddFavoriteOutput is the response for saving a car.
type AddFavoriteOutput struct {
	Body domain.Favorite
}

// FavoriteCarInput identifies one of the user's favorites.
type FavoriteCarInput struct {
	BearerAuth
	CarID int64 `path:"carId" doc:"Car ID" minimum:"1"`
}

// CheckFavoriteOutput is the response for checking a favorite.
type CheckFavoriteOutput struct {
	Body struct {
		CarID      int64 `json:"car_id"`
		IsFavorite bool  `json:"is_favorite"`
	}
}

// CountFavoritesOutput is the response for counting favorites.
type CountFavoritesOutput struct {
	Body struct {
		Count int `json:"count"`
	}
}

// --- Handlers ---

// ListFavorites returns the user's saved cars, newest first.
func (h *FavoritesHandler) ListFavorites(
	ctx context.Context,
	input *ListFavoritesInput,
) (*ListFavoritesOutput, error) {
	userID, err := input.UserID()
	if err != nil {
		return nil, err
	}

	favorites, err := h.store.ListFavorites(ctx, userID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing favorites failed: " + err.Error())
	}

	if favorites == nil {
		favorites = []domain.FavoriteCar{}
	}

	return &ListFavoritesOutput{Body: favorites}, nil
}

// AddFavorite saves a car for the user.
func (h *FavoritesHandler) AddFavorite(
	ctx context.Context,
	input *AddFavoriteInput,
) (*AddFavoriteOutput, error) {
	userID, err := input.UserID()
	if err != nil {
		return nil, err
	}

	f, err := h.store.AddFavorite(ctx, userID, input.Body.CarID)
	switch {
	case errors.Is(err, store.ErrDuplicate):
		return nil, huma.Error409Conflict("car is already a favorite")
	case errors.Is(err, store.ErrNotFound):
		return nil, huma.Error404NotFound("car not found")
	case err != nil:
		return nil, huma.Error500InternalServerError("adding favorite failed: " + err.Error())
	}

	return &AddFavoriteOutput{Body: *f}, nil
}

// RemoveFavorite deletes one of the user's favorites.
func (h *FavoritesHandler) RemoveFavorite(
	ctx context.Context,
	input *FavoriteCarInput,
) (*struct{}, error) {
	userID, err := input.UserID()
	if err != nil {
		return nil, err
	}

	err = h.store.RemoveFavorite(ctx, userID, input.CarID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("favorite not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("removing favorite failed: " + err.Error())
	}

	return nil, nil
}

// CheckFavorite reports whether the user has saved the car.
func (h *FavoritesHandler) CheckFavorite(
	ctx context.Context,
	input *FavoriteCarInput,
) (*CheckFavoriteOutput, error) {
	userID, err := input.UserID()
	if err != nil {
		return nil, err
	}

	ok, err := h.store.IsFavorite(ctx, userID, input.CarID)
	if err != nil {
		return nil, huma.Error500InternalServerError("checking favorite failed: " + err.Error())
	}

	resp := &CheckFavoriteOutput{}
	resp.Body.CarID = input.CarID
	resp.Body.IsFavorite = ok
	return resp, nil
}

// CountFavorites returns how many cars the user has saved.
func (h *FavoritesHandler) CountFavorites(
	ctx context.Context,
	input *ListFavoritesInput,
) (*CountFavoritesOutput, error) {
	userID, err := input.UserID()
	if err != nil {
		return nil, err
	}

	n, err := h.store.CountFavorites(ctx, userID)
	if err != nil {
		return nil, huma.Error500InternalServerError("counting favorites failed: " + err.Error())
	}

	resp := &CountFavoritesOutput{}
	resp.Body.Count = n
	return resp, nil
}

// RegisterFavoriteRoutes registers favorites endpoints with the Huma API.
func RegisterFavoriteRoutes(api huma.API, h *FavoritesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-favorites",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites",
		Summary:     "List favorite cars",
		Tags:        []string{"favorites"},
		Security:    bearerSecurity,
		Errors:      []int{http.StatusUnauthorized},
	}, h.ListFavorites)

	huma.Register(api, huma.Operation{
		OperationID:   "add-favorite",
		Method:        http.MethodPost,
		Path:          "/api/v1/favorites",
		Summary:       "Save a car",
		Tags:          []string{"favorites"},
		Security:      bearerSecurity,
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnauthorized, http.StatusNotFound, http.StatusConflict},
	}, h.AddFavorite)

	huma.Register(api, huma.Operation{
		OperationID:   "remove-favorite",
		Method:        http.MethodDelete,
		Path:          "/api/v1/favorites/{carId}",
		Summary:       "Remove a saved car",
		Tags:          []string{"favorites"},
		Security:      bearerSecurity,
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusUnauthorized, http.StatusNotFound},
	}, h.RemoveFavorite)

	huma.Register(api, huma.Operation{
		OperationID: "check-favorite",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites/check/{carId}",
		Summary:     "Check whether a car is saved",
		Tags:        []string{"favorites"},
		Security:    bearerSecurity,
		Errors:      []int{http.StatusUnauthorized},
	}, h.CheckFavorite)

	huma.Register(api, huma.Operation{
		OperationID: "count-favorites",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites/count",
		Summary:     "Count saved cars",
		Tags:        []string{"favorites"},
		Security:    bearerSecurity,
		Errors:      []int{http.StatusUnauthorized},
	}, h.CountFavorites)
}
