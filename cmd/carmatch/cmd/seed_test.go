package cmd

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	storeMocks "github.com/donaldgifford/carmatch/internal/store/mocks"
	domain "github.com/donaldgifford/carmatch/pkg/types"
)

const seedYAML = `
cars:
  - id: 1
    brand: BMW
    model: 330i
    year: 2020
    horsepower: 255
    price: 32500
    seats: 5
    fuel_type: Petrol
    engine_type: Inline-4 Turbo
    details:
      transmission: Automatic
      drive_type: RWD
    equipment:
      - name: Heated seats
        category: Comfort
  - brand: Tesla
    model: Model 3
    fuel_type: Electric
    engine_type: Electric Motor
`

func TestReadSeed(t *testing.T) {
	t.Parallel()

	cars, err := readSeed(strings.NewReader(seedYAML))
	require.NoError(t, err)
	require.Len(t, cars, 2)

	bmw := cars[0]
	assert.Equal(t, int64(1), bmw.ID)
	assert.Equal(t, "BMW", bmw.Brand)
	require.NotNil(t, bmw.Year)
	assert.Equal(t, 2020, *bmw.Year)
	require.NotNil(t, bmw.Price)
	assert.InDelta(t, 32500.0, *bmw.Price, 1e-9)
	require.NotNil(t, bmw.Details)
	assert.Equal(t, "RWD", bmw.Details.DriveType)
	require.Len(t, bmw.Equipment, 1)
	assert.Equal(t, "Comfort", bmw.Equipment[0].Category)

	tesla := cars[1]
	assert.Zero(t, tesla.ID)
	assert.Nil(t, tesla.Year, "absent fields stay unknown")
	assert.Nil(t, tesla.Details)
}

func TestReadSeed_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty", input: "", wantErr: "seed file is empty"},
		{name: "malformed", input: "cars: [", wantErr: "parsing seed file"},
		{
			name:    "missing brand and model",
			input:   "cars:\n  - brand: BMW\n  - model: A4\n",
			wantErr: "car 1: brand and model are required\ncar 2: brand and model are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := readSeed(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSeedCars(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().UpsertCar(mock.Anything, mock.AnythingOfType("*domain.CarWithDetails")).
		RunAndReturn(func(_ context.Context, c *domain.CarWithDetails) error {
			if c.ID == 0 {
				c.ID = 2
			}
			return nil
		}).
		Times(2)
	ms.EXPECT().CountCars(mock.Anything).Return(7, nil).Once()

	cars := []domain.CarWithDetails{
		{Car: domain.Car{ID: 1, Brand: "BMW", Model: "330i"}},
		{Car: domain.Car{Brand: "Tesla", Model: "Model 3"}},
	}

	total, err := seedCars(context.Background(), ms, cars)
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.Equal(t, int64(2), cars[1].ID)
}

func TestSeedCars_StopsOnError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().UpsertCar(mock.Anything, mock.Anything).Return(assert.AnError).Once()

	_, err := seedCars(context.Background(), ms, []domain.CarWithDetails{
		{Car: domain.Car{Brand: "BMW", Model: "330i"}},
		{Car: domain.Car{Brand: "Audi", Model: "A4"}},
	})
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "car 1 (BMW 330i)")
}
