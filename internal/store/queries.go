package store

// SQL query constants organized by entity.
// PostgresStore methods reference these constants.

// Car queries.
const (
	carColumns = `id, brand, model, year, horsepower, price::float8, seats,
		fuel_type, engine_type, mileage, color, image_url, created_at, updated_at`

	queryListAllCars = `SELECT ` + carColumns + ` FROM cars ORDER BY id`

	queryGetCar = `SELECT ` + carColumns + ` FROM cars WHERE id = $1`

	queryGetCarDetails = `
		SELECT transmission, drive_type, body_type, engine_size::float8, service_history
		FROM car_details
		WHERE car_id = $1`

	queryListCarEquipment = `
		SELECT id, equipment_name, equipment_category
		FROM car_equipment
		WHERE car_id = $1
		ORDER BY equipment_category, equipment_name`

	queryCountCars = `SELECT COUNT(*) FROM cars`

	queryInsertCar = `
		INSERT INTO cars (
			brand, model, year, horsepower, price, seats,
			fuel_type, engine_type, mileage, color, image_url
		) VALUES (
			@brand, @model, @year, @horsepower, @price, @seats,
			@fuel_type, @engine_type, @mileage, @color, @image_url
		)
		RETURNING id, created_at, updated_at`

	queryUpsertCarWithID = `
		INSERT INTO cars (
			id, brand, model, year, horsepower, price, seats,
			fuel_type, engine_type, mileage, color, image_url
		) VALUES (
			@id, @brand, @model, @year, @horsepower, @price, @seats,
			@fuel_type, @engine_type, @mileage, @color, @image_url
		)
		ON CONFLICT (id) DO UPDATE SET
			brand = EXCLUDED.brand,
			model = EXCLUDED.model,
			year = EXCLUDED.year,
			horsepower = EXCLUDED.horsepower,
			price = EXCLUDED.price,
			seats = EXCLUDED.seats,
			fuel_type = EXCLUDED.fuel_type,
			engine_type = EXCLUDED.engine_type,
			mileage = EXCLUDED.mileage,
			color = EXCLUDED.color,
			image_url = EXCLUDED.image_url,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	querySyncCarSequence = `
		SELECT setval(pg_get_serial_sequence('cars', 'id'), GREATEST((SELECT MAX(id) FROM cars), 1))`

	queryUpsertCarDetails = `
		INSERT INTO car_details (
			car_id, transmission, drive_type, body_type, engine_size, service_history
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (car_id) DO UPDATE SET
			transmission = EXCLUDED.transmission,
			drive_type = EXCLUDED.drive_type,
			body_type = EXCLUDED.body_type,
			engine_size = EXCLUDED.engine_size,
			service_history = EXCLUDED.service_history`

	queryDeleteCarEquipment = `DELETE FROM car_equipment WHERE car_id = $1`

	queryInsertCarEquipment = `
		INSERT INTO car_equipment (car_id, equipment_name, equipment_category)
		VALUES ($1, $2, $3)
		RETURNING id`
)

// User queries.
const (
	queryCreateUser = `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id::text, created_at, updated_at`

	queryGetUserByID = `
		SELECT id::text, username, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1`

	queryGetUserByUsername = `
		SELECT id::text, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1`

	queryUpdateUser = `
		UPDATE users SET
			username = $2,
			password_hash = $3,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
)

// Favorite queries.
const (
	queryAddFavorite = `
		INSERT INTO favorites (user_id, car_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	queryRemoveFavorite = `DELETE FROM favorites WHERE user_id = $1 AND car_id = $2`

	queryListFavorites = `
		SELECT c.id, c.brand, c.model, c.year, c.horsepower, c.price::float8, c.seats,
			c.fuel_type, c.engine_type, c.mileage, c.color, c.image_url, c.created_at, c.updated_at,
			f.created_at
		FROM favorites f
		JOIN cars c ON c.id = f.car_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`

	queryIsFavorite = `SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND car_id = $2)`

	queryCountFavorites = `SELECT COUNT(*) FROM favorites WHERE user_id = $1`
)

// Review queries.
const (
	queryCreateReview = `
		INSERT INTO reviews (user_id, car_id, rating, title, comment)
		VALUES (@user_id, @car_id, @rating, @title, @comment)
		RETURNING id, created_at, updated_at`

	queryGetReview = `
		SELECT r.id, r.user_id::text, u.username, r.car_id, r.rating, r.title, r.comment,
			r.created_at, r.updated_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.id = $1`

	queryListReviewsByCar = `
		SELECT r.id, r.user_id::text, u.username, r.car_id, r.rating, r.title, r.comment,
			r.created_at, r.updated_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.car_id = $1
		ORDER BY r.created_at DESC, r.id DESC`

	queryDeleteReview = `DELETE FROM reviews WHERE id = $1 AND user_id = $2`
)
