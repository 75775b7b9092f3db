// Package domain defines the core business types for carmatch.
package domain

import (
	"strings"
	"time"
)

// Car is a single inventory record. Numeric fields are pointers so that a
// NULL column is distinguishable from a zero value.
type Car struct {
	ID         int64    `json:"id"                   db:"id"          yaml:"id,omitempty"`
	Brand      string   `json:"brand"                db:"brand"       yaml:"brand"`
	Model      string   `json:"model"                db:"model"       yaml:"model"`
	Year       *int     `json:"year,omitempty"       db:"year"        yaml:"year"`
	Horsepower *int     `json:"horsepower,omitempty" db:"horsepower"  yaml:"horsepower"`
	Price      *float64 `json:"price,omitempty"      db:"price"       yaml:"price"`
	Seats      *int     `json:"seats,omitempty"      db:"seats"       yaml:"seats"`
	FuelType   string   `json:"fuel_type"            db:"fuel_type"   yaml:"fuel_type"`
	EngineType string   `json:"engine_type"          db:"engine_type" yaml:"engine_type"`

	// Catalog
	Mileage  *int   `json:"mileage,omitempty"   db:"mileage"   yaml:"mileage,omitempty"`
	Color    string `json:"color,omitempty"     db:"color"     yaml:"color,omitempty"`
	ImageURL string `json:"image_url,omitempty" db:"image_url" yaml:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at" db:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" yaml:"-"`
}

// DisplayName returns "Brand Model", trimmed.
func (c *Car) DisplayName() string {
	return strings.TrimSpace(c.Brand + " " + c.Model)
}

// CarDetail holds the extended specification of a car.
type CarDetail struct {
	Transmission   string   `json:"transmission,omitempty"    db:"transmission"    yaml:"transmission,omitempty"`
	DriveType      string   `json:"drive_type,omitempty"      db:"drive_type"      yaml:"drive_type,omitempty"`
	BodyType       string   `json:"body_type,omitempty"       db:"body_type"       yaml:"body_type,omitempty"`
	EngineSize     *float64 `json:"engine_size,omitempty"     db:"engine_size"     yaml:"engine_size,omitempty"`
	ServiceHistory string   `json:"service_history,omitempty" db:"service_history" yaml:"service_history,omitempty"`
}

// Equipment is a single piece of optional equipment fitted to a car.
type Equipment struct {
	ID       int64  `json:"id"       db:"id"                 yaml:"-"`
	Name     string `json:"name"     db:"equipment_name"     yaml:"name"`
	Category string `json:"category" db:"equipment_category" yaml:"category"`
}

// CarWithDetails is the full car view: the record, its details, and its equipment.
type CarWithDetails struct {
	Car       `yaml:",inline"`
	Details   *CarDetail  `json:"details,omitempty" yaml:"details,omitempty"`
	Equipment []Equipment `json:"equipment"         yaml:"equipment"`
}

// CriterionScore is the contribution of one criterion to a match percentage.
type CriterionScore struct {
	Weight int `json:"weight"`
	Score  int `json:"score"`
}

// MatchBreakdown maps criterion names (brand, model, year, ...) to their
// contribution. Only criteria present in the search appear.
type MatchBreakdown map[string]CriterionScore

// ScoredCar is a car annotated with its match percentage against a search.
type ScoredCar struct {
	Car
	MatchPercentage int            `json:"matchPercentage"`
	Breakdown       MatchBreakdown `json:"match_breakdown,omitempty"`
}

// User is a registered account. The password hash is never serialized.
type User struct {
	ID           string    `json:"id"         db:"id"`
	Username     string    `json:"username"   db:"username"`
	PasswordHash string    `json:"-"          db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Favorite records that a user saved a car.
type Favorite struct {
	ID        int64     `json:"id"         db:"id"`
	UserID    string    `json:"user_id"    db:"user_id"`
	CarID     int64     `json:"car_id"     db:"car_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// FavoriteCar is a favorited car together with the time it was saved.
type FavoriteCar struct {
	Car
	FavoritedAt time.Time `json:"favorited_at" db:"favorited_at"`
}

// Review is a user's rating of a car.
type Review struct {
	ID        int64     `json:"id"                 db:"id"`
	UserID    string    `json:"user_id"            db:"user_id"`
	Username  string    `json:"username,omitempty" db:"username"`
	CarID     int64     `json:"car_id"             db:"car_id"`
	Rating    int       `json:"rating"             db:"rating"`
	Title     string    `json:"title"              db:"title"`
	Comment   *string   `json:"comment,omitempty"  db:"comment"`
	CreatedAt time.Time `json:"created_at"         db:"created_at"`
	UpdatedAt time.Time `json:"updated_at"         db:"updated_at"`
}

// Review rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// ReviewSummary aggregates the reviews of one car.
type ReviewSummary struct {
	CarID         int64    `json:"car_id"`
	Count         int      `json:"count"`
	AverageRating float64  `json:"average_rating"`
	Reviews       []Review `json:"reviews"`
}
