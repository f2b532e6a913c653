package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Schema creates the application tables when they do not exist.  It is
// invoked by the seed tool and may also be called at server startup in
// dev environments.  Seats are not a table of their own: the seat map is
// derived from theatre geometry, and bookings carry their claimed seats
// in booking_seats.
func Schema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id CHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(16) NOT NULL DEFAULT 'USER',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS movies (
			id CHAR(36) PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			genre VARCHAR(64) NOT NULL,
			rating DOUBLE NOT NULL DEFAULT 0,
			duration INT NOT NULL,
			language VARCHAR(64) NOT NULL,
			poster_url VARCHAR(512) NOT NULL,
			release_date DATETIME NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_movies_title (title),
			INDEX idx_movies_genre (genre),
			INDEX idx_movies_release_date (release_date)
		)`,
		`CREATE TABLE IF NOT EXISTS theatres (
			id CHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			location VARCHAR(255) NOT NULL,
			total_seats INT NOT NULL,
			seat_rows INT NOT NULL,
			seats_per_row INT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_theatres_name (name),
			INDEX idx_theatres_location (location)
		)`,
		`CREATE TABLE IF NOT EXISTS showtimes (
			id CHAR(36) PRIMARY KEY,
			movie_id CHAR(36) NOT NULL,
			theatre_id CHAR(36) NOT NULL,
			show_date DATETIME NOT NULL,
			price DOUBLE NOT NULL,
			available_seats INT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_showtimes_movie (movie_id),
			INDEX idx_showtimes_theatre (theatre_id),
			INDEX idx_showtimes_show_date (show_date),
			CONSTRAINT fk_showtimes_movie FOREIGN KEY (movie_id) REFERENCES movies(id),
			CONSTRAINT fk_showtimes_theatre FOREIGN KEY (theatre_id) REFERENCES theatres(id)
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id CHAR(36) PRIMARY KEY,
			user_id CHAR(36) NOT NULL,
			showtime_id CHAR(36) NOT NULL,
			total_amount DOUBLE NOT NULL,
			status VARCHAR(16) NOT NULL DEFAULT 'confirmed',
			booking_date DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_bookings_user (user_id),
			INDEX idx_bookings_showtime (showtime_id),
			CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users(id),
			CONSTRAINT fk_bookings_showtime FOREIGN KEY (showtime_id) REFERENCES showtimes(id)
		)`,
		`CREATE TABLE IF NOT EXISTS booking_seats (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			booking_id CHAR(36) NOT NULL,
			row_label VARCHAR(4) NOT NULL,
			seat_number INT NOT NULL,
			status VARCHAR(16) NOT NULL DEFAULT 'booked',
			INDEX idx_booking_seats_booking (booking_id),
			CONSTRAINT fk_booking_seats_booking FOREIGN KEY (booking_id) REFERENCES bookings(id) ON DELETE CASCADE
		)`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
