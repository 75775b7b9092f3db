package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/carmatch/internal/store"
	domain "github.com/donaldgifford/carmatch/pkg/types"
)

const defaultCarsPageSize = 50

// CarsHandler handles car browsing endpoints.
type CarsHandler struct {
	store store.Store
}

// NewCarsHandler creates a new CarsHandler.
func NewCarsHandler(s store.Store) *CarsHandler {
	return &CarsHandler{store: s}
}

// --- Input/Output types ---

// ListCarsInput is the input for browsing cars with optional filters.
type ListCarsInput struct {
	Brand    string  `query:"brand"     doc:"Filter by brand (case-insensitive)"`
	FuelType string  `query:"fuel_type" doc:"Filter by fuel type (case-insensitive)"`
	MinYear  int     `query:"min_year"  doc:"Earliest model year"                     minimum:"0"`
	MaxYear  int     `query:"max_year"  doc:"Latest model year"                       minimum:"0"`
	MaxPrice float64 `query:"max_price" doc:"Maximum price"                           minimum:"0"`
	Limit    int     `query:"limit"     doc:"Number of results (default 50)"          minimum:"1" maximum:"500"`
	Offset   int     `query:"offset"    doc:"Pagination offset"                       minimum:"0"`
	OrderBy  string  `query:"order_by"  doc:"Sort field"                              enum:"id,price,year,horsepower,"`
}

// ListCarsOutput is the response for browsing cars.
type ListCarsOutput struct {
	Body struct {
		Cars   []domain.Car `json:"cars"`
		Total  int          `json:"total"`
		Limit  int          `json:"limit"`
		Offset int          `json:"offset"`
	}
}

// CarIDInput identifies a single car.
type CarIDInput struct {
	ID int64 `path:"id" doc:"Car ID" minimum:"1"`
}

// GetCarOutput is the response for getting a single car.
type GetCarOutput struct {
	Body domain.CarWithDetails
}

// ListEquipmentOutput is the response for a car's equipment.
type ListEquipmentOutput struct {
	Body []domain.Equipment
}

// --- Handlers ---

// ListCars returns a page of cars with optional brand, fuel, year, and
// price filters.
func (h *CarsHandler) ListCars(
	ctx context.Context,
	input *ListCarsInput,
) (*ListCarsOutput, error) {
	q := &store.CarQuery{
		Limit:   defaultCarsPageSize,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.Brand != "" {
		q.Brand = &input.Brand
	}

	if input.FuelType != "" {
		q.FuelType = &input.FuelType
	}

	if input.MinYear != 0 {
		q.MinYear = &input.MinYear
	}

	if input.MaxYear != 0 {
		q.MaxYear = &input.MaxYear
	}

	if input.MaxPrice != 0 {
		q.MaxPrice = &input.MaxPrice
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	cars, total, err := h.store.ListCars(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("car query failed: " + err.Error())
	}

	if cars == nil {
		cars = []domain.Car{}
	}

	resp := &ListCarsOutput{}
	resp.Body.Cars = cars
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetCar returns a car with its details and equipment.
func (h *CarsHandler) GetCar(
	ctx context.Context,
	input *CarIDInput,
) (*GetCarOutput, error) {
	car, err := h.store.GetCar(ctx, input.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("car not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching car failed: " + err.Error())
	}

	if car.Equipment == nil {
		car.Equipment = []domain.Equipment{}
	}

	return &GetCarOutput{Body: *car}, nil
}

// ListEquipment returns the equipment fitted to a car.
func (h *CarsHandler) ListEquipment(
	ctx context.Context,
	input *CarIDInput,
) (*ListEquipmentOutput, error) {
	equipment, err := h.store.ListCarEquipment(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing equipment failed: " + err.Error())
	}

	if equipment == nil {
		equipment = []domain.Equipment{}
	}

	return &ListEquipmentOutput{Body: equipment}, nil
}

// RegisterCarRoutes registers car endpoints with the Huma API.
func RegisterCarRoutes(api huma.API, h *CarsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-cars",
		Method:      http.MethodGet,
		Path:        "/api/v1/cars",
		Summary:     "List cars",
		Description: "Returns a page of cars with optional brand, fuel type, year, and price filters.",
		Tags:        []string{"cars"},
	}, h.ListCars)

	huma.Register(api, huma.Operation{
		OperationID: "get-car",
		Method:      http.MethodGet,
		Path:        "/api/v1/cars/{id}",
		Summary:     "Get a car by ID",
		Description: "Returns a single car with its extended details and equipment.",
		Tags:        []string{"cars"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetCar)

	huma.Register(api, huma.Operation{
		OperationID: "list-car-equipment",
		Method:      http.MethodGet,
		Path:        "/api/v1/cars/{id}/equipment",
		Summary:     "List a car's equipment",
		Tags:        []string{"cars"},
	}, h.ListEquipment)
}
