package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/carmatch/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func testCar() *domain.Car {
	return &domain.Car{
		ID:         1,
		Brand:      "BMW",
		Model:      "3 Series 330i",
		Year:       ptr(2020),
		Horsepower: ptr(255),
		Price:      ptr(25000.0),
		Seats:      ptr(5),
		FuelType:   "Petrol",
		EngineType: "2.0L Turbo I4",
	}
}

func TestScore_EmptyCriteriaIsPerfectMatch(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, Score(testCar(), &Criteria{}))
	assert.Equal(t, 100, Score(&domain.Car{}, &Criteria{}))
	assert.Equal(t, 100, Score(testCar(), &Criteria{Brand: "   "}), "blank terms are absent")
}

func TestScore_NilInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		car      *domain.Car
		criteria *Criteria
		want     int
	}{
		{name: "nil criteria", car: &domain.Car{}, criteria: nil, want: 100},
		{name: "nil criteria with full car", car: testCar(), criteria: nil, want: 100},
		{name: "nil car without criteria", car: nil, criteria: &Criteria{}, want: 100},
		{name: "nil car with brand", car: nil, criteria: &Criteria{Brand: "BMW"}, want: 0},
		{name: "nil car with numeric criteria", car: nil, criteria: &Criteria{Year: ptr(2020), Seats: ptr(4)}, want: 0},
		{name: "both nil", car: nil, criteria: nil, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Score(tt.car, tt.criteria))

			pct, breakdown := DefaultScorer().Explain(tt.car, tt.criteria)
			assert.Equal(t, tt.want, pct)
			if tt.criteria == nil {
				assert.Empty(t, breakdown)
			}
		})
	}
}

func TestScore_Brand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		brand string
		want  int
	}{
		{name: "exact", brand: "BMW", want: 100},
		{name: "case insensitive", brand: "bmw", want: 100},
		{name: "surrounding whitespace", brand: " bmw ", want: 100},
		{name: "mismatch", brand: "Audi", want: 0},
		{name: "prefix is not a match", brand: "BM", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Score(testCar(), &Criteria{Brand: tt.brand}))
		})
	}
}

func TestScore_Model(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		carModel string
		search   string
		want     int
	}{
		{name: "exact match gets full weight", carModel: "3 Series", search: "3 series", want: 100},
		// floor(15*0.5) = 7 of 15.
		{name: "substring gets half weight", carModel: "3 Series 330i", search: "3 Series", want: 47},
		{name: "no containment", carModel: "A4", search: "3 Series", want: 0},
		{name: "missing model", carModel: "", search: "3 Series", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			car := testCar()
			car.Model = tt.carModel
			assert.Equal(t, tt.want, Score(car, &Criteria{Model: tt.search}))
		})
	}
}

func TestScore_Year(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		search int
		want   int
	}{
		{name: "same year", search: 2020, want: 100},
		{name: "one year newer", search: 2021, want: 70},
		{name: "one year older", search: 2019, want: 70},
		{name: "two years off", search: 2022, want: 40},
		{name: "three years off", search: 2017, want: 40},
		{name: "four years off", search: 2024, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Score(testCar(), &Criteria{Year: ptr(tt.search)}))
		})
	}
}

func TestScore_Horsepower(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		carHP     int
		requested int
		want      int
	}{
		{name: "exactly requested", carHP: 200, requested: 200, want: 100},
		{name: "10 percent under gets 9 of 10", carHP: 180, requested: 200, want: 90},
		{name: "25 percent under gets floor of 7.5", carHP: 150, requested: 200, want: 70},
		{name: "more than 30 percent under", carHP: 100, requested: 200, want: 0},
		{name: "25 percent over is fine", carHP: 250, requested: 200, want: 100},
		{name: "just under 30 percent over is fine", carHP: 259, requested: 200, want: 100},
		{name: "far more powerful is penalized", carHP: 300, requested: 200, want: 50},
		{name: "non-positive request never matches", carHP: 300, requested: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			car := testCar()
			car.Horsepower = ptr(tt.carHP)
			assert.Equal(t, tt.want, Score(car, &Criteria{Horsepower: ptr(tt.requested)}))
		})
	}
}

func TestScore_Price(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		carPrice float64
		minPrice *float64
		maxPrice *float64
		want     int
	}{
		{name: "inside range", carPrice: 25000, minPrice: ptr(20000.0), maxPrice: ptr(30000.0), want: 100},
		// belowFrac 0.25, deduct floor(20*0.5) = 10.
		{name: "below minimum", carPrice: 15000, minPrice: ptr(20000.0), maxPrice: ptr(30000.0), want: 50},
		{name: "far below minimum", carPrice: 5000, minPrice: ptr(20000.0), want: 0},
		// overFrac 0.1, deduct floor(0.1*5*20) = 10.
		{name: "ten percent over budget", carPrice: 33000, maxPrice: ptr(30000.0), want: 50},
		{name: "far over budget", carPrice: 40000, maxPrice: ptr(30000.0), want: 0},
		{name: "only minimum given and met", carPrice: 25000, minPrice: ptr(20000.0), want: 100},
		{name: "only maximum given and met", carPrice: 25000, maxPrice: ptr(30000.0), want: 100},
		{name: "zero maximum cannot divide", carPrice: 25000, maxPrice: ptr(0.0), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			car := testCar()
			car.Price = ptr(tt.carPrice)
			assert.Equal(t, tt.want, Score(car, &Criteria{MinPrice: tt.minPrice, MaxPrice: tt.maxPrice}))
		})
	}
}

func TestScore_Seats(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, Score(testCar(), &Criteria{Seats: ptr(5)}))
	assert.Equal(t, 100, Score(testCar(), &Criteria{Seats: ptr(4)}))
	assert.Equal(t, 0, Score(testCar(), &Criteria{Seats: ptr(7)}), "too few seats disqualifies")
}

func TestScore_FuelAndEngine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		criteria Criteria
		want     int
	}{
		{name: "fuel exact ignoring case", criteria: Criteria{FuelType: "petrol"}, want: 100},
		{name: "fuel mismatch", criteria: Criteria{FuelType: "Diesel"}, want: 0},
		{name: "engine exact", criteria: Criteria{EngineType: "2.0l turbo i4"}, want: 100},
		// floor(10*0.7) = 7 of 10.
		{name: "engine substring", criteria: Criteria{EngineType: "turbo"}, want: 70},
		{name: "engine mismatch", criteria: Criteria{EngineType: "V8"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Score(testCar(), &tt.criteria))
		})
	}
}

func TestScore_MissingCarFieldsAreNonMatches(t *testing.T) {
	t.Parallel()

	car := &domain.Car{Brand: "BMW"}
	c := &Criteria{
		Brand:      "BMW",
		Year:       ptr(2020),
		Horsepower: ptr(200),
		MinPrice:   ptr(1000.0),
		Seats:      ptr(2),
		FuelType:   "petrol",
		EngineType: "V6",
	}

	pct, breakdown := DefaultScorer().Explain(car, c)

	// Only brand (15) scores, out of 15+10+10+20+10+10+10 = 85.
	assert.Equal(t, 18, pct)
	assert.Equal(t, 15, breakdown[CriterionBrand].Score)
	for _, name := range []string{
		CriterionYear, CriterionHorsepower, CriterionPrice,
		CriterionSeats, CriterionFuelType, CriterionEngineType,
	} {
		assert.Zero(t, breakdown[name].Score, name)
	}
}

func TestScore_AllCriteriaPerfectMatch(t *testing.T) {
	t.Parallel()

	c := &Criteria{
		Brand:      "bmw",
		Model:      "3 series 330i",
		Year:       ptr(2020),
		Horsepower: ptr(250),
		MinPrice:   ptr(20000.0),
		MaxPrice:   ptr(30000.0),
		Seats:      ptr(5),
		FuelType:   "PETROL",
		EngineType: "2.0L Turbo I4",
	}

	pct, breakdown := DefaultScorer().Explain(testCar(), c)
	assert.Equal(t, 100, pct)
	require.Len(t, breakdown, 8)

	total := 0
	for _, cs := range breakdown {
		total += cs.Weight
	}
	assert.Equal(t, TotalWeight, total)
}

func TestScore_MixedCriteria(t *testing.T) {
	t.Parallel()

	// brand 15/15, year 7/10, seats 0/10 -> 22/35 = 62.86 -> 63.
	c := &Criteria{Brand: "BMW", Year: ptr(2021), Seats: ptr(7)}
	assert.Equal(t, 63, Score(testCar(), c))
}

func TestScore_AlwaysWithinBounds(t *testing.T) {
	t.Parallel()

	cars := []*domain.Car{
		testCar(),
		{},
		{Brand: "Tesla", Model: "Model 3", Year: ptr(2023), Horsepower: ptr(480), Price: ptr(0.0), Seats: ptr(5), FuelType: "Electric"},
		{Brand: "Ford", Horsepower: ptr(0), Price: ptr(1e9), Seats: ptr(0)},
	}
	criteria := []*Criteria{
		{},
		{Brand: "bmw", Model: "x", Year: ptr(1900)},
		{Horsepower: ptr(1), MinPrice: ptr(1e12), MaxPrice: ptr(0.01)},
		{MinPrice: ptr(-5.0), MaxPrice: ptr(-1.0)},
		{Seats: ptr(100), FuelType: "diesel", EngineType: "v"},
	}

	for _, car := range cars {
		for _, c := range criteria {
			pct := Score(car, c)
			assert.GreaterOrEqual(t, pct, 0)
			assert.LessOrEqual(t, pct, 100)
		}
	}
}

func TestScore_Idempotent(t *testing.T) {
	t.Parallel()

	s := DefaultScorer()
	c := &Criteria{Model: "3 Series", MinPrice: ptr(20000.0), Horsepower: ptr(300)}
	first := s.Score(testCar(), c)
	for range 50 {
		assert.Equal(t, first, s.Score(testCar(), c))
	}
}

func TestScore_CustomRules(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()
	rules.ModelPartialCredit = 1
	s := NewScorer(DefaultWeights(), rules)

	assert.Equal(t, 100, s.Score(testCar(), &Criteria{Model: "3 Series"}))
}
