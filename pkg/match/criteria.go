// Package match scores cars against optional search criteria and ranks the
// results. Scoring is pure: no I/O, no shared state, safe for concurrent use.
package match

import "strings"

// Criterion names, used as keys in breakdowns and weight tables.
const (
	CriterionBrand      = "brand"
	CriterionModel      = "model"
	CriterionYear       = "year"
	CriterionHorsepower = "horsepower"
	CriterionPrice      = "price"
	CriterionSeats      = "seats"
	CriterionFuelType   = "fuelType"
	CriterionEngineType = "engineType"
)

// Criteria is the set of optional search terms. A nil pointer or blank
// string means the criterion is absent and does not participate in scoring.
type Criteria struct {
	Brand      string
	Model      string // substring match
	Year       *int
	Horsepower *int // minimum desired
	MinPrice   *float64
	MaxPrice   *float64
	Seats      *int // minimum
	FuelType   string
	EngineType string // substring match
}

// IsEmpty reports whether no criterion is present.
func (c *Criteria) IsEmpty() bool {
	return !c.hasBrand() &&
		!c.hasModel() &&
		c.Year == nil &&
		c.Horsepower == nil &&
		!c.hasPrice() &&
		c.Seats == nil &&
		!c.hasFuelType() &&
		!c.hasEngineType()
}

// Active returns the names of the present criteria in weight-table order.
func (c *Criteria) Active() []string {
	var names []string
	if c.hasBrand() {
		names = append(names, CriterionBrand)
	}
	if c.hasModel() {
		names = append(names, CriterionModel)
	}
	if c.Year != nil {
		names = append(names, CriterionYear)
	}
	if c.Horsepower != nil {
		names = append(names, CriterionHorsepower)
	}
	if c.hasPrice() {
		names = append(names, CriterionPrice)
	}
	if c.Seats != nil {
		names = append(names, CriterionSeats)
	}
	if c.hasFuelType() {
		names = append(names, CriterionFuelType)
	}
	if c.hasEngineType() {
		names = append(names, CriterionEngineType)
	}
	return names
}

func (c *Criteria) hasBrand() bool      { return strings.TrimSpace(c.Brand) != "" }
func (c *Criteria) hasModel() bool      { return strings.TrimSpace(c.Model) != "" }
func (c *Criteria) hasPrice() bool      { return c.MinPrice != nil || c.MaxPrice != nil }
func (c *Criteria) hasFuelType() bool   { return strings.TrimSpace(c.FuelType) != "" }
func (c *Criteria) hasEngineType() bool { return strings.TrimSpace(c.EngineType) != "" }
