package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/carmatch/pkg/types"
)

// CarsResponse wraps a paginated cars response.
type CarsResponse struct {
	Cars   []domain.Car `json:"cars"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

// ListCarsParams defines query parameters for browsing cars.
type ListCarsParams struct {
	Brand    string
	FuelType string
	MinYear  int
	MaxYear  int
	MaxPrice float64
	Limit    int
	Offset   int
	OrderBy  string
}

// ListCars returns a page of cars matching the given parameters.
func (c *Client) ListCars(ctx context.Context, params *ListCarsParams) (*CarsResponse, error) {
	q := url.Values{}
	if params.Brand != "" {
		q.Set("brand", params.Brand)
	}
	if params.FuelType != "" {
		q.Set("fuel_type", params.FuelType)
	}
	if params.MinYear > 0 {
		q.Set("min_year", strconv.Itoa(params.MinYear))
	}
	if params.MaxYear > 0 {
		q.Set("max_year", strconv.Itoa(params.MaxYear))
	}
	if params.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatFloat(params.MaxPrice, 'f', -1, 64))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/cars"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp CarsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCar returns a single car with its details and equipment.
func (c *Client) GetCar(ctx context.Context, id int64) (*domain.CarWithDetails, error) {
	var car domain.CarWithDetails
	if err := c.get(ctx, fmt.Sprintf("/api/v1/cars/%d", id), &car); err != nil {
		return nil, err
	}
	return &car, nil
}

// ListEquipment returns the equipment fitted to a car.
func (c *Client) ListEquipment(ctx context.Context, carID int64) ([]domain.Equipment, error) {
	var equipment []domain.Equipment
	if err := c.get(ctx, fmt.Sprintf("/api/v1/cars/%d/equipment", carID), &equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}
