package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights(t *testing.T) {
	t.Parallel()

	w := DefaultWeights()
	assert.Equal(t, TotalWeight, w.Sum())
	require.NoError(t, w.Validate())

	assert.Equal(t, 15, w.For(CriterionBrand))
	assert.Equal(t, 20, w.For(CriterionPrice))
	assert.Zero(t, w.For("mileage"))
}

func TestWeights_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Weights)
		wantErr string
	}{
		{
			name:    "sum too high",
			modify:  func(w *Weights) { w.Brand = 20 },
			wantErr: "weights sum to 105",
		},
		{
			name:    "zero weight",
			modify:  func(w *Weights) { w.Seats = 0; w.Price = 30 },
			wantErr: "weight seats must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := DefaultWeights()
			tt.modify(&w)
			err := w.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRules_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultRules().Validate())

	r := DefaultRules()
	r.YearNearCredit = 1.5
	r.YearMaxDistance = 0
	r.PriceOverMaxFactor = -1

	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year_near_credit must be within [0,1]")
	assert.Contains(t, err.Error(), "year_max_distance must be at least 1")
	assert.Contains(t, err.Error(), "price penalty factors must be non-negative")
}

func TestCriteria_Active(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Criteria{}).IsEmpty())
	assert.True(t, (&Criteria{Brand: " ", EngineType: "\t"}).IsEmpty())

	c := &Criteria{EngineType: "V6", Brand: "Audi", MaxPrice: ptr(1.0)}
	assert.False(t, c.IsEmpty())
	assert.Equal(t, []string{CriterionBrand, CriterionPrice, CriterionEngineType}, c.Active())
}
