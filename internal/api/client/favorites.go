package client

import (
	"context"
	"fmt"

	domain "github.com/donaldgifford/carmatch/pkg/types"
)

// ListFavorites returns the signed-in user's saved cars.
func (c *Client) ListFavorites(ctx context.Context) ([]domain.FavoriteCar, error) {
	var favorites []domain.FavoriteCar
	if err := c.get(ctx, "/api/v1/favorites", &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// AddFavorite saves a car.
func (c *Client) AddFavorite(ctx context.Context, carID int64) (*domain.Favorite, error) {
	var f domain.Favorite
	body := map[string]int64{"car_id": carID}
	if err := c.post(ctx, "/api/v1/favorites", body, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// RemoveFavorite removes a saved car.
func (c *Client) RemoveFavorite(ctx context.Context, carID int64) error {
	return c.del(ctx, fmt.Sprintf("/api/v1/favorites/%d", carID), nil)
}

// IsFavorite reports whether the car is saved.
func (c *Client) IsFavorite(ctx context.Context, carID int64) (bool, error) {
	var resp struct {
		IsFavorite bool `json:"is_favorite"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/v1/favorites/check/%d", carID), &resp); err != nil {
		return false, err
	}
	return resp.IsFavorite, nil
}

// CountFavorites returns how many cars are saved.
func (c *Client) CountFavorites(ctx context.Context) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := c.get(ctx, "/api/v1/favorites/count", &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}
