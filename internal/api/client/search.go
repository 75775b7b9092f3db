package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/carmatch/pkg/types"
)

// SearchParams defines the search criteria. Zero values are omitted.
type SearchParams struct {
	Brand      string
	Model      string
	Year       int
	Horsepower int
	MinPrice   float64
	MaxPrice   float64
	Seats      int
	FuelType   string
	EngineType string
	Explain    bool
}

func (p *SearchParams) values() url.Values {
	q := url.Values{}
	if p.Brand != "" {
		q.Set("brand", p.Brand)
	}
	if p.Model != "" {
		q.Set("model", p.Model)
	}
	if p.Year > 0 {
		q.Set("year", strconv.Itoa(p.Year))
	}
	if p.Horsepower > 0 {
		q.Set("horsepower", strconv.Itoa(p.Horsepower))
	}
	if p.MinPrice > 0 {
		q.Set("minPrice", strconv.FormatFloat(p.MinPrice, 'f', -1, 64))
	}
	if p.MaxPrice > 0 {
		q.Set("maxPrice", strconv.FormatFloat(p.MaxPrice, 'f', -1, 64))
	}
	if p.Seats > 0 {
		q.Set("seats", strconv.Itoa(p.Seats))
	}
	if p.FuelType != "" {
		q.Set("fuelType", p.FuelType)
	}
	if p.EngineType != "" {
		q.Set("engineType", p.EngineType)
	}
	if p.Explain {
		q.Set("explain", "true")
	}
	return q
}

// Search returns the best matching cars, highest match percentage first.
func (c *Client) Search(ctx context.Context, params *SearchParams) ([]domain.ScoredCar, error) {
	path := "/api/v1/search"
	if q := params.values(); len(q) > 0 {
		path += "?" + q.Encode()
	}

	var cars []domain.ScoredCar
	if err := c.get(ctx, path, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// AllCars returns the full inventory, unscored.
func (c *Client) AllCars(ctx context.Context) ([]domain.Car, error) {
	var cars []domain.Car
	if err := c.get(ctx, "/api/v1/search?getAllCars=true", &cars); err != nil {
		return nil, err
	}
	return cars, nil
}
