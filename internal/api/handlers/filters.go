package handlers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/donaldgifford/carmatch/pkg/match"
)

// CriteriaParams holds the raw search query values. Empty strings are
// absent criteria.
type CriteriaParams struct {
	Brand      string
	Model      string
	Year       string
	Horsepower string
	MinPrice   string
	MaxPrice   string
	Seats      string
	FuelType   string
	EngineType string
}

// ParseCriteria converts raw query values into match.Criteria. Numeric
// values must parse and must not be negative, and minPrice may not exceed
// maxPrice.
func ParseCriteria(p CriteriaParams) (match.Criteria, error) {
	c := match.Criteria{
		Brand:      strings.TrimSpace(p.Brand),
		Model:      strings.TrimSpace(p.Model),
		FuelType:   strings.TrimSpace(p.FuelType),
		EngineType: strings.TrimSpace(p.EngineType),
	}

	var err error
	if c.Year, err = parseIntParam("year", p.Year); err != nil {
		return c, err
	}
	if c.Horsepower, err = parseIntParam("horsepower", p.Horsepower); err != nil {
		return c, err
	}
	if c.Seats, err = parseIntParam("seats", p.Seats); err != nil {
		return c, err
	}
	if c.MinPrice, err = parseFloatParam("minPrice", p.MinPrice); err != nil {
		return c, err
	}
	if c.MaxPrice, err = parseFloatParam("maxPrice", p.MaxPrice); err != nil {
		return c, err
	}

	if c.MinPrice != nil && c.MaxPrice != nil && *c.MinPrice > *c.MaxPrice {
		return c, fmt.Errorf("minPrice %g exceeds maxPrice %g", *c.MinPrice, *c.MaxPrice)
	}

	return c, nil
}

// ParseFlag parses a boolean query value. Absent is false; anything
// strconv.ParseBool rejects is an error.
func ParseFlag(name, raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: must be true or false", name, raw)
	}
	return v, nil
}

func parseIntParam(name, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: must be an integer", name, raw)
	}
	if v < 0 {
		return nil, fmt.Errorf("invalid %s %d: must not be negative", name, v)
	}
	return &v, nil
}

func parseFloatParam(name, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("invalid %s %q: must be a number", name, raw)
	}
	if v < 0 {
		return nil, fmt.Errorf("invalid %s %g: must not be negative", name, v)
	}
	return &v, nil
}
