// Package domain contains domain models for the application.
package domain

// Difficulty grades how demanding a trail is.
type Difficulty string

// Accepted difficulty grades.
const (
	DifficultyEasy        Difficulty = "Easy"
	DifficultyModerate    Difficulty = "Moderate"
	DifficultyDifficult   Difficulty = "Difficult"
	DifficultyExperienced Difficulty = "Experienced"
)

// Trail represents a persisted hiking route belonging to one national park.
type Trail struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	DistanceKm     float64    `json:"distanceKm"`
	ElevationGainM float64    `json:"elevationGainM"`
	Difficulty     Difficulty `json:"difficulty"`
	NationalParkID int        `json:"nationalParkId"`
}

// TrailDto is the read projection returned to callers; it carries every
// attribute including the system-assigned identifier.
type TrailDto struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	DistanceKm     float64    `json:"distanceKm"`
	ElevationGainM float64    `json:"elevationGainM"`
	Difficulty     Difficulty `json:"difficulty"`
	NationalParkID int        `json:"nationalParkId"`
}

// TrailCreateDto is the write projection for creation. Identifiers are never
// accepted from the caller; storage assigns them.
type TrailCreateDto struct {
	Name           string     `json:"name" binding:"required"`
	DistanceKm     float64    `json:"distanceKm" binding:"required,gt=0"`
	ElevationGainM float64    `json:"elevationGainM" binding:"gte=0"`
	Difficulty     Difficulty `json:"difficulty" binding:"required,oneof=Easy Moderate Difficult Experienced"`
	NationalParkID int        `json:"nationalParkId" binding:"required,gt=0"`
}

// TrailUpdateDto is the write projection for full-replacement update. The
// identifier is mandatory and must equal the one in the route path.
type TrailUpdateDto struct {
	ID             int        `json:"id" binding:"required,gt=0"`
	Name           string     `json:"name" binding:"required"`
	DistanceKm     float64    `json:"distanceKm" binding:"required,gt=0"`
	ElevationGainM float64    `json:"elevationGainM" binding:"gte=0"`
	Difficulty     Difficulty `json:"difficulty" binding:"required,oneof=Easy Moderate Difficult Experienced"`
	NationalParkID int        `json:"nationalParkId" binding:"required,gt=0"`
}
