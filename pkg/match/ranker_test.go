package match

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/carmatch/pkg/types"
)

func pricedCar(id int64, price float64) domain.Car {
	return domain.Car{ID: id, Brand: "Audi", Model: "A4", Price: ptr(price)}
}

func ids(scored []domain.ScoredCar) []int64 {
	out := make([]int64, len(scored))
	for i := range scored {
		out[i] = scored[i].ID
	}
	return out
}

func TestRank_SortsAndDropsZeroMatches(t *testing.T) {
	t.Parallel()

	// With minPrice 20000: 13700 -> 40%, 18900 -> 90%, 5000 -> 0%.
	cars := []domain.Car{
		pricedCar(1, 13700),
		pricedCar(2, 18900),
		pricedCar(3, 5000),
	}

	got := NewRanker(nil).Rank(cars, &Criteria{MinPrice: ptr(20000.0)})

	require.Len(t, got, 2)
	assert.Equal(t, []int64{2, 1}, ids(got))
	assert.Equal(t, 90, got[0].MatchPercentage)
	assert.Equal(t, 40, got[1].MatchPercentage)
	assert.Nil(t, got[0].Breakdown)
}

func TestRank_EmptyCriteriaKeepsEveryCar(t *testing.T) {
	t.Parallel()

	cars := []domain.Car{{ID: 1}, {ID: 2, Brand: "Kia"}, {ID: 3}}

	got := NewRanker(nil).Rank(cars, &Criteria{})
	require.Len(t, got, 3)
	assert.Equal(t, []int64{1, 2, 3}, ids(got))
	for _, sc := range got {
		assert.Equal(t, 100, sc.MatchPercentage)
	}

	assert.Len(t, NewRanker(nil).Rank(cars, nil), 3, "nil criteria behaves like empty")
}

func TestRank_TruncatesToLimit(t *testing.T) {
	t.Parallel()

	cars := make([]domain.Car, 15)
	for i := range cars {
		cars[i] = domain.Car{ID: int64(i + 1), Brand: "Toyota"}
	}

	got := NewRanker(nil).Rank(cars, &Criteria{Brand: "toyota"})
	require.Len(t, got, DefaultLimit)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids(got), "ties keep input order")

	got = NewRanker(nil, WithLimit(3)).Rank(cars, &Criteria{})
	assert.Len(t, got, 3)
}

func TestRank_StableTies(t *testing.T) {
	t.Parallel()

	cars := []domain.Car{
		{ID: 10, Brand: "Mazda", Year: ptr(2019)},
		{ID: 11, Brand: "Mazda", Year: ptr(2020)},
		{ID: 12, Brand: "Mazda", Year: ptr(2021)},
		{ID: 13, Brand: "Mazda", Year: ptr(2020)},
	}

	got := NewRanker(nil).Rank(cars, &Criteria{Year: ptr(2020)})
	assert.Equal(t, []int64{11, 13, 10, 12}, ids(got))
}

func TestRank_NoCandidates(t *testing.T) {
	t.Parallel()

	got := NewRanker(nil).Rank(nil, &Criteria{Brand: "Volvo"})
	assert.Empty(t, got)

	got = NewRanker(nil).Rank([]domain.Car{{ID: 1, Brand: "Fiat"}}, &Criteria{Brand: "Volvo"})
	assert.Empty(t, got)
}

func TestRank_Explain(t *testing.T) {
	t.Parallel()

	cars := []domain.Car{*testCar()}
	c := &Criteria{Brand: "BMW", Year: ptr(2021)}

	got := NewRanker(nil, WithExplain(true)).Rank(cars, c)
	require.Len(t, got, 1)
	assert.Equal(t, domain.MatchBreakdown{
		CriterionBrand: {Weight: 15, Score: 15},
		CriterionYear:  {Weight: 10, Score: 7},
	}, got[0].Breakdown)
	assert.Equal(t, 88, got[0].MatchPercentage)

	explained := NewRanker(nil).RankExplained(cars, c)
	assert.Equal(t, got, explained)
}

func TestRank_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	brands := []string{"BMW", "Audi", "Ford", "Kia"}
	cars := make([]domain.Car, 1000)
	for i := range cars {
		cars[i] = domain.Car{
			ID:         int64(i),
			Brand:      brands[i%len(brands)],
			Model:      fmt.Sprintf("Model %d", i%7),
			Year:       ptr(2015 + i%10),
			Horsepower: ptr(100 + i%300),
			Price:      ptr(float64(10000 + (i*37)%40000)),
			Seats:      ptr(2 + i%6),
		}
	}
	c := &Criteria{
		Brand:      "bmw",
		Year:       ptr(2020),
		Horsepower: ptr(250),
		MinPrice:   ptr(20000.0),
		MaxPrice:   ptr(35000.0),
		Seats:      ptr(4),
	}

	sequential := NewRanker(nil, WithLimit(1000)).Rank(cars, c)
	parallel := NewRanker(nil, WithLimit(1000), WithWorkers(8)).Rank(cars, c)

	assert.Equal(t, sequential, parallel)
}

func TestRanker_AllReturnsRawList(t *testing.T) {
	t.Parallel()

	cars := make([]domain.Car, 25)
	for i := range cars {
		cars[i] = domain.Car{ID: int64(i + 1)}
	}

	got := NewRanker(nil).All(cars)
	require.Len(t, got, 25)
	assert.Equal(t, cars, got)

	got[0].Brand = "changed"
	assert.Empty(t, cars[0].Brand, "All returns a copy")
}

func TestNewRanker_Options(t *testing.T) {
	t.Parallel()

	r := NewRanker(nil, WithLimit(0), WithWorkers(-1))
	assert.Equal(t, DefaultLimit, r.Limit())
	assert.Equal(t, 1, r.workers)

	r = NewRanker(DefaultScorer(), WithLimit(25), WithWorkers(4))
	assert.Equal(t, 25, r.Limit())
	assert.Equal(t, 4, r.workers)
}
