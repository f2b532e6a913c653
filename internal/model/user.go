package model

import "time"

// User roles.  USER can browse and book; ADMIN can additionally
// create movies, theatres and showtimes.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents an account as exposed over the API.  The password
// hash never appears in responses; repositories use a separate record
// type that carries it.
//
// Fields:
//  ID        – UUID string identifier.
//  Name      – display name.
//  Email     – unique, lower-cased email address.
//  Role      – RoleUser or RoleAdmin.
//  CreatedAt – timestamp of registration.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
