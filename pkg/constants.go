// Package pkg provides shared types and utilities for the Parky API.
package pkg

// Common API path constants.
const (
	// BasePath is the versioned root path for the API.
	BasePath = "/api/v1.0"

	// TrailsPath is the trail resource collection path.
	TrailsPath = BasePath + "/trails"

	// NationalParksPath is the national park resource collection path.
	NationalParksPath = BasePath + "/nationalparks"
)
