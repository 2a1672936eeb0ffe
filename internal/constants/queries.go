package constants

const (
	CreateBookingsTable = `
	CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		flight_id VARCHAR(64) NOT NULL,
		airline VARCHAR(100) NOT NULL,
		flight_number VARCHAR(16) NOT NULL,
		origin VARCHAR(100) NOT NULL,
		destination VARCHAR(100) NOT NULL,
		departure_time VARCHAR(8) NOT NULL,
		arrival_time VARCHAR(8) NOT NULL,
		class_type VARCHAR(16) NOT NULL,
		passenger_count INT NOT NULL,
		passenger_details JSONB NOT NULL DEFAULT '[]',
		total_price INT NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
	`

	InsertBooking = `
	INSERT INTO bookings (
		id,
		flight_id,
		airline,
		flight_number,
		origin,
		destination,
		departure_time,
		arrival_time,
		class_type,
		passenger_count,
		passenger_details,
		total_price,
		status
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	RETURNING id, created_at
	`

	GetBookingByID = `
	SELECT * FROM bookings WHERE id = $1
	`

	ListBookings = `
	SELECT * FROM bookings ORDER BY created_at DESC
	`

	UpdateBookingStatus = `
	UPDATE bookings SET status = $2 WHERE id = $1
	`
)
