package domain

import "time"

// NationalPark represents a park owning zero or more trails.
type NationalPark struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	State       string    `json:"state"`
	Established time.Time `json:"established"`
	Created     time.Time `json:"created"`
}

// NationalParkDto is the read projection for a national park.
type NationalParkDto struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	State       string    `json:"state"`
	Established time.Time `json:"established"`
	Created     time.Time `json:"created"`
}

// NationalParkCreateDto is the write projection for creating a park. The
// creation timestamp is set by storage, not accepted from the caller.
type NationalParkCreateDto struct {
	Name        string    `json:"name" binding:"required"`
	State       string    `json:"state" binding:"required"`
	Established time.Time `json:"established"`
}

// NationalParkUpdateDto is the write projection for full-replacement update.
type NationalParkUpdateDto struct {
	ID          int       `json:"id" binding:"required,gt=0"`
	Name        string    `json:"name" binding:"required"`
	State       string    `json:"state" binding:"required"`
	Established time.Time `json:"established"`
}
