package model

import "time"

// Movie represents a film that can be scheduled for screenings.
// Movies are created by administrators and referenced by showtimes.
// The struct doubles as the wire format: identifiers are UUID strings
// and field names are camelCase, matching the REST contract.
//
// Fields:
//  ID          – UUID string identifier.
//  Title       – movie title.
//  Description – plot summary shown on the details page.
//  Genre       – genre label (Action, Sci-Fi, ...).
//  Rating      – numeric rating on a 0–10 scale.
//  Duration    – running time in minutes.
//  Language    – spoken language.
//  PosterURL   – URL of the poster image.
//  ReleaseDate – theatrical release timestamp.
//  CreatedAt   – timestamp when the record was created.
//  UpdatedAt   – timestamp of last update.
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genre       string    `json:"genre"`
	Rating      float64   `json:"rating"`
	Duration    int       `json:"duration"`
	Language    string    `json:"language"`
	PosterURL   string    `json:"posterUrl"`
	ReleaseDate time.Time `json:"releaseDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
