// Package store defines the datastore abstraction for carmatch.
// Handlers and the catalog depend on the Store interface, never on the
// Postgres implementation, so they can be tested with mocks.
package store

import (
	"context"
	"errors"

	domain "github.com/donaldgifford/carmatch/pkg/types"
)

// Sentinel errors returned by Store implementations.
var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint is violated.
	ErrDuplicate = errors.New("already exists")
)

// CarQuery defines optional filters and paging for browsing cars.
type CarQuery struct {
	Brand    *string
	FuelType *string
	MinYear  *int
	MaxYear  *int
	MaxPrice *float64
	Limit    int // default 50
	Offset   int
	OrderBy  string // "id", "price", "year", "horsepower"
}

// CarLister supplies the search candidate set.
type CarLister interface {
	ListAllCars(ctx context.Context) ([]domain.Car, error)
}

// Store defines all data access operations for carmatch.
type Store interface {
	CarLister

	// Cars
	ListCars(ctx context.Context, q *CarQuery) ([]domain.Car, int, error)
	GetCar(ctx context.Context, id int64) (*domain.CarWithDetails, error)
	ListCarEquipment(ctx context.Context, carID int64) ([]domain.Equipment, error)
	UpsertCar(ctx context.Context, c *domain.CarWithDetails) error
	CountCars(ctx context.Context) (int, error)

	// Users
	CreateUser(ctx context.Context, u *domain.User) error
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateUser(ctx context.Context, u *domain.User) error

	// Favorites
	AddFavorite(ctx context.Context, userID string, carID int64) (*domain.Favorite, error)
	RemoveFavorite(ctx context.Context, userID string, carID int64) error
	ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteCar, error)
	IsFavorite(ctx context.Context, userID string, carID int64) (bool, error)
	CountFavorites(ctx context.Context, userID string) (int, error)

	// Reviews
	CreateReview(ctx context.Context, r *domain.Review) error
	GetReview(ctx context.Context, id int64) (*domain.Review, error)
	ListReviewsByCar(ctx context.Context, carID int64) ([]domain.Review, error)
	DeleteReview(ctx context.Context, id int64, userID string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
