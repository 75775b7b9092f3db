package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/carmatch/pkg/types"
)

const defaultPoolSize = 10

// Postgres error codes mapped to store sentinels.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
// A poolSize <= 0 uses the default.
func NewPostgresStore(ctx context.Context, connString string, poolSize int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	cfg.MaxConns = int32(poolSize) //nolint:gosec // bounded by config

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := RunMigrations(ctx, s.pool)
	return err
}

// ApplyMigrations is Migrate, reporting which versions were applied.
func (s *PostgresStore) ApplyMigrations(ctx context.Context) ([]string, error) {
	return RunMigrations(ctx, s.pool)
}

// ListAllCars returns every car ordered by id. It is the search candidate set.
func (s *PostgresStore) ListAllCars(ctx context.Context) ([]domain.Car, error) {
	rows, err := s.pool.Query(ctx, queryListAllCars)
	if err != nil {
		return nil, fmt.Errorf("querying cars: %w", err)
	}
	defer rows.Close()

	return scanCars(rows)
}

// ListCars queries cars with optional filters, returning a page and the total count.
func (s *PostgresStore) ListCars(ctx context.Context, q *CarQuery) ([]domain.Car, int, error) {
	if q == nil {
		q = &CarQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting cars: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying cars: %w", err)
	}
	defer rows.Close()

	cars, err := scanCars(rows)
	if err != nil {
		return nil, 0, err
	}

	return cars, total, nil
}

// GetCar returns a car with its details and equipment.
func (s *PostgresStore) GetCar(ctx context.Context, id int64) (*domain.CarWithDetails, error) {
	out := &domain.CarWithDetails{}
	if err := scanCar(s.pool.QueryRow(ctx, queryGetCar, id), &out.Car); err != nil {
		return nil, mapError(err)
	}

	d := &domain.CarDetail{}
	err := s.pool.QueryRow(ctx, queryGetCarDetails, id).Scan(
		&d.Transmission, &d.DriveType, &d.BodyType, &d.EngineSize, &d.ServiceHistory,
	)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// details are optional
	case err != nil:
		return nil, fmt.Errorf("querying car details: %w", err)
	default:
		out.Details = d
	}

	equipment, err := s.ListCarEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	out.Equipment = equipment

	return out, nil
}

// ListCarEquipment returns the equipment of a car ordered by category and name.
func (s *PostgresStore) ListCarEquipment(ctx context.Context, carID int64) ([]domain.Equipment, error) {
	rows, err := s.pool.Query(ctx, queryListCarEquipment, carID)
	if err != nil {
		return nil, fmt.Errorf("querying car equipment: %w", err)
	}
	defer rows.Close()

	equipment := []domain.Equipment{}
	for rows.Next() {
		var e domain.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Category); err != nil {
			return nil, fmt.Errorf("scanning equipment: %w", err)
		}
		equipment = append(equipment, e)
	}

	return equipment, rows.Err()
}

// UpsertCar inserts a car, or replaces it when c.ID is set, together with its
// details and equipment in a single transaction.
func (s *PostgresStore) UpsertCar(ctx context.Context, c *domain.CarWithDetails) error {
	args := pgx.NamedArgs{
		"id":          c.ID,
		"brand":       c.Brand,
		"model":       c.Model,
		"year":        c.Year,
		"horsepower":  c.Horsepower,
		"price":       c.Price,
		"seats":       c.Seats,
		"fuel_type":   c.FuelType,
		"engine_type": c.EngineType,
		"mileage":     c.Mileage,
		"color":       c.Color,
		"image_url":   c.ImageURL,
	}

	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		query := queryInsertCar
		if c.ID > 0 {
			query = queryUpsertCarWithID
		}
		if err := tx.QueryRow(ctx, query, args).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return fmt.Errorf("upserting car: %w", err)
		}
		if query == queryUpsertCarWithID {
			if _, err := tx.Exec(ctx, querySyncCarSequence); err != nil {
				return fmt.Errorf("syncing car id sequence: %w", err)
			}
		}

		if d := c.Details; d != nil {
			if _, err := tx.Exec(ctx, queryUpsertCarDetails,
				c.ID, d.Transmission, d.DriveType, d.BodyType, d.EngineSize, d.ServiceHistory,
			); err != nil {
				return fmt.Errorf("upserting car details: %w", err)
			}
		}

		if _, err := tx.Exec(ctx, queryDeleteCarEquipment, c.ID); err != nil {
			return fmt.Errorf("clearing car equipment: %w", err)
		}
		for i := range c.Equipment {
			e := &c.Equipment[i]
			if err := tx.QueryRow(ctx, queryInsertCarEquipment, c.ID, e.Name, e.Category).Scan(&e.ID); err != nil {
				return fmt.Errorf("inserting equipment %q: %w", e.Name, err)
			}
		}

		return nil
	})
}

// CountCars returns the number of cars in the inventory.
func (s *PostgresStore) CountCars(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, queryCountCars).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cars: %w", err)
	}
	return n, nil
}

// CreateUser inserts a user. Returns ErrDuplicate when the username is taken.
func (s *PostgresStore) CreateUser(ctx context.Context, u *domain.User) error {
	err := s.pool.QueryRow(ctx, queryCreateUser, u.Username, u.PasswordHash).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return mapError(err)
	}
	return nil
}

// GetUserByID retrieves a user by UUID.
func (s *PostgresStore) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.getUser(ctx, queryGetUserByID, id)
}

// GetUserByUsername retrieves a user by exact username.
func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.getUser(ctx, queryGetUserByUsername, username)
}

func (s *PostgresStore) getUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	u := &domain.User{}
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

// UpdateUser saves the username and password hash of an existing user.
func (s *PostgresStore) UpdateUser(ctx context.Context, u *domain.User) error {
	err := s.pool.QueryRow(ctx, queryUpdateUser, u.ID, u.Username, u.PasswordHash).Scan(&u.UpdatedAt)
	if err != nil {
		return mapError(err)
	}
	return nil
}

// AddFavorite records that the user saved a car. Returns ErrDuplicate when
// the car is already a favorite and ErrNotFound when the car does not exist.
func (s *PostgresStore) AddFavorite(ctx context.Context, userID string, carID int64) (*domain.Favorite, error) {
	f := &domain.Favorite{UserID: userID, CarID: carID}
	if err := s.pool.QueryRow(ctx, queryAddFavorite, userID, carID).Scan(&f.ID, &f.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return f, nil
}

// RemoveFavorite deletes a favorite. Returns ErrNotFound when none existed.
func (s *PostgresStore) RemoveFavorite(ctx context.Context, userID string, carID int64) error {
	tag, err := s.pool.Exec(ctx, queryRemoveFavorite, userID, carID)
	if err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListFavorites returns the user's favorited cars, newest first.
func (s *PostgresStore) ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteCar, error) {
	rows, err := s.pool.Query(ctx, queryListFavorites, userID)
	if err != nil {
		return nil, fmt.Errorf("querying favorites: %w", err)
	}
	defer rows.Close()

	favorites := []domain.FavoriteCar{}
	for rows.Next() {
		var f domain.FavoriteCar
		if err := rows.Scan(append(carFields(&f.Car), &f.FavoritedAt)...); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		favorites = append(favorites, f)
	}

	return favorites, rows.Err()
}

// IsFavorite reports whether the user has saved the car.
func (s *PostgresStore) IsFavorite(ctx context.Context, userID string, carID int64) (bool, error) {
	var ok bool
	if err := s.pool.QueryRow(ctx, queryIsFavorite, userID, carID).Scan(&ok); err != nil {
		return false, fmt.Errorf("checking favorite: %w", err)
	}
	return ok, nil
}

// CountFavorites returns how many cars the user has saved.
func (s *PostgresStore) CountFavorites(ctx context.Context, userID string) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, queryCountFavorites, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting favorites: %w", err)
	}
	return n, nil
}

// CreateReview inserts a review. Returns ErrNotFound when the car or user
// does not exist.
func (s *PostgresStore) CreateReview(ctx context.Context, r *domain.Review) error {
	args := pgx.NamedArgs{
		"user_id": r.UserID,
		"car_id":  r.CarID,
		"rating":  r.Rating,
		"title":   r.Title,
		"comment": r.Comment,
	}
	if err := s.pool.QueryRow(ctx, queryCreateReview, args).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

// GetReview retrieves a review by id.
func (s *PostgresStore) GetReview(ctx context.Context, id int64) (*domain.Review, error) {
	r := &domain.Review{}
	if err := scanReview(s.pool.QueryRow(ctx, queryGetReview, id), r); err != nil {
		return nil, mapError(err)
	}
	return r, nil
}

// ListReviewsByCar returns a car's reviews, newest first.
func (s *PostgresStore) ListReviewsByCar(ctx context.Context, carID int64) ([]domain.Review, error) {
	rows, err := s.pool.Query(ctx, queryListReviewsByCar, carID)
	if err != nil {
		return nil, fmt.Errorf("querying reviews: %w", err)
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var r domain.Review
		if err := scanReview(rows, &r); err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		reviews = append(reviews, r)
	}

	return reviews, rows.Err()
}

// DeleteReview deletes a review written by userID. Returns ErrNotFound when
// no such review exists for that author.
func (s *PostgresStore) DeleteReview(ctx context.Context, id int64, userID string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteReview, id, userID)
	if err != nil {
		return fmt.Errorf("deleting review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// mapError translates pgx errors into store sentinels, wrapping the original.
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrNotFound, pgErr.ConstraintName)
		}
	}

	return err
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// carFields returns scan destinations matching carColumns.
func carFields(c *domain.Car) []any {
	return []any{
		&c.ID, &c.Brand, &c.Model, &c.Year, &c.Horsepower, &c.Price, &c.Seats,
		&c.FuelType, &c.EngineType, &c.Mileage, &c.Color, &c.ImageURL,
		&c.CreatedAt, &c.UpdatedAt,
	}
}

func scanCar(row scannable, c *domain.Car) error {
	return row.Scan(carFields(c)...)
}

func scanCars(rows pgx.Rows) ([]domain.Car, error) {
	cars := []domain.Car{}
	for rows.Next() {
		var c domain.Car
		if err := scanCar(rows, &c); err != nil {
			return nil, fmt.Errorf("scanning car: %w", err)
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

func scanReview(row scannable, r *domain.Review) error {
	return row.Scan(
		&r.ID, &r.UserID, &r.Username, &r.CarID, &r.Rating, &r.Title, &r.Comment,
		&r.CreatedAt, &r.UpdatedAt,
	)
}
