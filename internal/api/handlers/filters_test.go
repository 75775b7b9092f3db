package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/carmatch/pkg/match"
)

func ptr[T any](v T) *T { return &v }

func TestParseCriteria(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  CriteriaParams
		want    match.Criteria
		wantErr string
	}{
		{
			name:   "empty params",
			params: CriteriaParams{},
			want:   match.Criteria{},
		},
		{
			name:   "text criteria are trimmed",
			params: CriteriaParams{Brand: " BMW ", Model: "X5", FuelType: "Diesel", EngineType: " V6"},
			want:   match.Criteria{Brand: "BMW", Model: "X5", FuelType: "Diesel", EngineType: "V6"},
		},
		{
			name:   "numeric criteria",
			params: CriteriaParams{Year: "2020", Horsepower: "250", Seats: "5", MinPrice: "15000", MaxPrice: "30000.50"},
			want: match.Criteria{
				Year:       ptr(2020),
				Horsepower: ptr(250),
				Seats:      ptr(5),
				MinPrice:   ptr(15000.0),
				MaxPrice:   ptr(30000.50),
			},
		},
		{
			name:   "zero is a present value",
			params: CriteriaParams{Horsepower: "0"},
			want:   match.Criteria{Horsepower: ptr(0)},
		},
		{
			name:    "malformed year",
			params:  CriteriaParams{Year: "twenty"},
			wantErr: `invalid year "twenty": must be an integer`,
		},
		{
			name:    "fractional seats",
			params:  CriteriaParams{Seats: "4.5"},
			wantErr: `invalid seats "4.5"`,
		},
		{
			name:    "negative horsepower",
			params:  CriteriaParams{Horsepower: "-10"},
			wantErr: "invalid horsepower -10: must not be negative",
		},
		{
			name:    "malformed price",
			params:  CriteriaParams{MaxPrice: "cheap"},
			wantErr: `invalid maxPrice "cheap": must be a number`,
		},
		{
			name:    "not a number price",
			params:  CriteriaParams{MinPrice: "NaN"},
			wantErr: `invalid minPrice "NaN"`,
		},
		{
			name:    "negative price",
			params:  CriteriaParams{MinPrice: "-1"},
			wantErr: "invalid minPrice -1: must not be negative",
		},
		{
			name:    "inverted price range",
			params:  CriteriaParams{MinPrice: "30000", MaxPrice: "20000"},
			wantErr: "minPrice 30000 exceeds maxPrice 20000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCriteria(tt.params)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    bool
		wantErr bool
	}{
		{raw: "", want: false},
		{raw: "true", want: true},
		{raw: " TRUE ", want: true},
		{raw: "1", want: true},
		{raw: "false", want: false},
		{raw: "0", want: false},
		{raw: "yes", wantErr: true},
		{raw: "on", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFlag("getAllCars", tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid getAllCars")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
