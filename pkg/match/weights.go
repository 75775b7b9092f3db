package match

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// TotalWeight is the sum every complete weight table must reach.
const TotalWeight = 100

// Weights defines the relative importance of each criterion. When all
// criteria are present the weights sum to TotalWeight.
type Weights struct {
	Brand      int
	Model      int
	Year       int
	Horsepower int
	Price      int
	Seats      int
	FuelType   int
	EngineType int
}

// DefaultWeights returns the default criterion weights.
func DefaultWeights() Weights {
	return Weights{
		Brand:      15,
		Model:      15,
		Year:       10,
		Horsepower: 10,
		Price:      20,
		Seats:      10,
		FuelType:   10,
		EngineType: 10,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() int {
	return w.Brand + w.Model + w.Year + w.Horsepower +
		w.Price + w.Seats + w.FuelType + w.EngineType
}

// For returns the weight of the named criterion, or 0 for an unknown name.
func (w Weights) For(criterion string) int {
	switch criterion {
	case CriterionBrand:
		return w.Brand
	case CriterionModel:
		return w.Model
	case CriterionYear:
		return w.Year
	case CriterionHorsepower:
		return w.Horsepower
	case CriterionPrice:
		return w.Price
	case CriterionSeats:
		return w.Seats
	case CriterionFuelType:
		return w.FuelType
	case CriterionEngineType:
		return w.EngineType
	default:
		return 0
	}
}

// Validate checks that every weight is positive and the table sums to TotalWeight.
func (w Weights) Validate() error {
	var errs []error

	for _, name := range []string{
		CriterionBrand, CriterionModel, CriterionYear, CriterionHorsepower,
		CriterionPrice, CriterionSeats, CriterionFuelType, CriterionEngineType,
	} {
		if w.For(name) <= 0 {
			errs = append(errs, fmt.Errorf("weight %s must be positive (got %d)", name, w.For(name)))
		}
	}

	if sum := w.Sum(); sum != TotalWeight {
		errs = append(errs, fmt.Errorf("weights sum to %d, must sum to %d", sum, TotalWeight))
	}

	return errors.Join(errs...)
}

// Rules holds the partial-credit constants applied by the per-criterion
// scoring functions. Fractions are multiplied by the criterion weight and
// floored.
type Rules struct {
	ModelPartialCredit float64 // model contains the term but is not equal

	YearOneOffCredit float64 // |year diff| == 1
	YearNearCredit   float64 // 2 <= |year diff| <= YearMaxDistance
	YearMaxDistance  int

	HorsepowerMaxDeficit   float64 // fraction below requested still credited
	HorsepowerExcessPct    float64 // percent above requested before penalty
	HorsepowerExcessCredit float64

	PriceBelowMinFactor float64 // penalty multiplier on fraction below minPrice
	PriceOverMaxFactor  float64 // penalty multiplier on fraction over maxPrice

	EnginePartialCredit float64 // engine type contains the term but is not equal
}

// DefaultRules returns the default partial-credit constants.
func DefaultRules() Rules {
	return Rules{
		ModelPartialCredit:     0.5,
		YearOneOffCredit:       0.7,
		YearNearCredit:         0.4,
		YearMaxDistance:        3,
		HorsepowerMaxDeficit:   0.3,
		HorsepowerExcessPct:    30,
		HorsepowerExcessCredit: 0.5,
		PriceBelowMinFactor:    2,
		PriceOverMaxFactor:     5,
		EnginePartialCredit:    0.7,
	}
}

// Validate checks that credit fractions lie in [0,1] and factors are non-negative.
func (r Rules) Validate() error {
	var errs []error

	fractions := map[string]float64{
		"model_partial_credit":     r.ModelPartialCredit,
		"year_one_off_credit":      r.YearOneOffCredit,
		"year_near_credit":         r.YearNearCredit,
		"horsepower_max_deficit":   r.HorsepowerMaxDeficit,
		"horsepower_excess_credit": r.HorsepowerExcessCredit,
		"engine_partial_credit":    r.EnginePartialCredit,
	}
	for _, name := range slices.Sorted(maps.Keys(fractions)) {
		if v := fractions[name]; v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0,1] (got %v)", name, v))
		}
	}

	if r.YearMaxDistance < 1 {
		errs = append(errs, fmt.Errorf("year_max_distance must be at least 1 (got %d)", r.YearMaxDistance))
	}
	if r.HorsepowerExcessPct < 0 {
		errs = append(errs, fmt.Errorf("horsepower_excess_pct must be non-negative (got %v)", r.HorsepowerExcessPct))
	}
	if r.PriceBelowMinFactor < 0 || r.PriceOverMaxFactor < 0 {
		errs = append(errs, errors.New("price penalty factors must be non-negative"))
	}

	return errors.Join(errs...)
}
