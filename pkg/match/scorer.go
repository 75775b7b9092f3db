package match

import (
	"math"
	"strings"

	domain "github.com/donaldgifford/carmatch/pkg/types"
)

// Scorer computes match percentages with a fixed weight table and rule set.
// The zero value is not usable; construct with NewScorer or DefaultScorer.
type Scorer struct {
	weights Weights
	rules   Rules
}

// NewScorer creates a Scorer with the given weights and rules.
func NewScorer(w Weights, r Rules) *Scorer {
	return &Scorer{weights: w, rules: r}
}

// DefaultScorer returns a Scorer using DefaultWeights and DefaultRules.
func DefaultScorer() *Scorer {
	return NewScorer(DefaultWeights(), DefaultRules())
}

// Score computes the match percentage of car against c using the default
// weights and rules.
func Score(car *domain.Car, c *Criteria) int {
	return DefaultScorer().Score(car, c)
}

// Score returns the match percentage of car against c, in [0,100].
// With no criteria present every car is a perfect match. A nil c counts as
// no criteria and a nil car as a car with every field unknown.
func (s *Scorer) Score(car *domain.Car, c *Criteria) int {
	pct, _ := s.evaluate(car, c, false)
	return pct
}

// Explain returns the match percentage together with the per-criterion
// weight and score that produced it.
func (s *Scorer) Explain(car *domain.Car, c *Criteria) (int, domain.MatchBreakdown) {
	return s.evaluate(car, c, true)
}

func (s *Scorer) evaluate(car *domain.Car, c *Criteria, explain bool) (int, domain.MatchBreakdown) {
	if c == nil {
		c = &Criteria{}
	}
	if car == nil {
		car = &domain.Car{}
	}

	var breakdown domain.MatchBreakdown
	if explain {
		breakdown = domain.MatchBreakdown{}
	}

	totalWeight, totalScore := 0, 0
	for _, name := range c.Active() {
		w := s.weights.For(name)
		score := clamp(s.criterionScore(name, w, car, c), 0, w)

		totalWeight += w
		totalScore += score

		if explain {
			breakdown[name] = domain.CriterionScore{Weight: w, Score: score}
		}
	}

	if totalWeight == 0 {
		return 100, breakdown
	}

	pct := int(math.Round(float64(totalScore) / float64(totalWeight) * 100))
	return clamp(pct, 0, 100), breakdown
}

func (s *Scorer) criterionScore(name string, w int, car *domain.Car, c *Criteria) int {
	switch name {
	case CriterionBrand:
		return exactScore(w, car.Brand, c.Brand)
	case CriterionModel:
		return containsScore(w, car.Model, c.Model, s.rules.ModelPartialCredit)
	case CriterionYear:
		return s.yearScore(w, car.Year, *c.Year)
	case CriterionHorsepower:
		return s.horsepowerScore(w, car.Horsepower, *c.Horsepower)
	case CriterionPrice:
		return s.priceScore(w, car.Price, c.MinPrice, c.MaxPrice)
	case CriterionSeats:
		return seatsScore(w, car.Seats, *c.Seats)
	case CriterionFuelType:
		return exactScore(w, car.FuelType, c.FuelType)
	case CriterionEngineType:
		return containsScore(w, car.EngineType, c.EngineType, s.rules.EnginePartialCredit)
	default:
		return 0
	}
}

// exactScore awards the full weight on a case-insensitive exact match.
func exactScore(w int, have, want string) int {
	have = strings.TrimSpace(have)
	if have == "" {
		return 0
	}
	if strings.EqualFold(have, strings.TrimSpace(want)) {
		return w
	}
	return 0
}

// containsScore awards the full weight on a case-insensitive exact match and
// floor(w*partial) when have merely contains want.
func containsScore(w int, have, want string, partial float64) int {
	have = strings.ToLower(strings.TrimSpace(have))
	want = strings.ToLower(strings.TrimSpace(want))
	if have == "" || !strings.Contains(have, want) {
		return 0
	}
	if have == want {
		return w
	}
	return floorMul(w, partial)
}

func (s *Scorer) yearScore(w int, have *int, want int) int {
	if have == nil {
		return 0
	}

	d := *have - want
	if d < 0 {
		d = -d
	}

	switch {
	case d == 0:
		return w
	case d == 1:
		return floorMul(w, s.rules.YearOneOffCredit)
	case d <= s.rules.YearMaxDistance:
		return floorMul(w, s.rules.YearNearCredit)
	default:
		return 0
	}
}

// horsepowerScore treats want as the minimum desired power. Cars slightly
// under it get proportional credit; cars far above it get reduced credit.
func (s *Scorer) horsepowerScore(w int, have *int, want int) int {
	if have == nil || want <= 0 {
		return 0
	}

	car, requested := float64(*have), float64(want)

	if car < requested {
		deficit := (requested - car) / requested
		if deficit <= s.rules.HorsepowerMaxDeficit {
			return int(math.Floor(float64(w) * (1 - deficit)))
		}
		return 0
	}

	excessPct := (car - requested) / requested * 100
	if excessPct > s.rules.HorsepowerExcessPct {
		return floorMul(w, s.rules.HorsepowerExcessCredit)
	}
	return w
}

// priceScore starts at the full weight and deducts for falling below
// minPrice or exceeding maxPrice. A bound that must serve as a divisor but is
// not positive makes the criterion score 0.
func (s *Scorer) priceScore(w int, have, minPrice, maxPrice *float64) int {
	if have == nil {
		return 0
	}

	price := *have
	score := w

	if minPrice != nil && price < *minPrice {
		if *minPrice <= 0 {
			return 0
		}
		belowFrac := (*minPrice - price) / *minPrice
		score -= int(math.Floor(float64(w) * math.Min(1, belowFrac*s.rules.PriceBelowMinFactor)))
	}

	if maxPrice != nil && price > *maxPrice {
		if *maxPrice <= 0 {
			return 0
		}
		overFrac := (price - *maxPrice) / *maxPrice
		penalty := math.Floor(overFrac * s.rules.PriceOverMaxFactor * float64(w))
		score -= int(math.Min(float64(w), penalty))
	}

	return max(score, 0)
}

// seatsScore has no partial credit: too few seats disqualifies the criterion.
func seatsScore(w int, have *int, want int) int {
	if have == nil || *have < want {
		return 0
	}
	return w
}

func floorMul(w int, frac float64) int {
	return int(math.Floor(float64(w) * frac))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
